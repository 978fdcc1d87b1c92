package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// FileStore keeps one JSON file per profile under <dataDir>/profiles.
// It is the default store when Postgres is disabled.
type FileStore struct {
	dir    string
	logger *logger.Logger
}

var _ contracts.ProfileStore = (*FileStore)(nil)

// NewFileStore creates the store and its directory
func NewFileStore(dataDir string, log *logger.Logger) (*FileStore, error) {
	dir := filepath.Join(dataDir, "profiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &FileStore{dir: dir, logger: log}, nil
}

// Save validates and writes the profile, bumping its version when a
// previous version exists on disk
func (s *FileStore) Save(ctx context.Context, p *contracts.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	existing, err := s.Load(ctx, p.Name)
	switch {
	case err == nil:
		p.Version = existing.Version + 1
	case errors.Is(err, contracts.ErrProfileNotFound):
		if p.Version == 0 {
			p.Version = 1
		}
	default:
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", p.Name, err)
	}

	path := s.path(p.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", p.Name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write profile %s: %w", p.Name, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"profile": p.Name,
		"version": p.Version,
	}).Info("Profile saved")
	return nil
}

// Load reads one profile by name
func (s *FileStore) Load(_ context.Context, name string) (*contracts.Profile, error) {
	// an unsafe name cannot name a stored profile
	if err := contracts.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.ErrProfileNotFound, name)
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", contracts.ErrProfileNotFound, name)
		}
		return nil, fmt.Errorf("read profile %s: %w", name, err)
	}

	var p contracts.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", name, err)
	}
	// a tampered file must not smuggle an unsafe name back in
	if err := contracts.ValidateName(p.Name); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", name, err)
	}
	return &p, nil
}

// List returns all stored profiles sorted by name
func (s *FileStore) List(ctx context.Context) ([]*contracts.Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var out []*contracts.Profile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		p, err := s.Load(ctx, name)
		if err != nil {
			s.logger.WithError(err).Warnf("Skipping unreadable profile file: %s", e.Name())
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a stored profile
func (s *FileStore) Delete(_ context.Context, name string) error {
	if err := contracts.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %s", contracts.ErrProfileNotFound, name)
	}
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", contracts.ErrProfileNotFound, name)
		}
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	s.logger.WithField("profile", name).Info("Profile deleted")
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
