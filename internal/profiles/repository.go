package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/database"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Repository is the Postgres-backed profile store and report archive
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

var (
	_ contracts.ProfileStore     = (*Repository)(nil)
	_ contracts.ReportRepository = (*Repository)(nil)
)

// NewRepository creates the repository
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{db: db, logger: log}
}

// Save upserts the profile, bumping its version on conflict
func (r *Repository) Save(ctx context.Context, p *contracts.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Version == 0 {
		p.Version = 1
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	var place, timezone string
	var lat, lon *float64
	if p.Location != nil {
		place = p.Location.Place
		timezone = p.Location.Timezone
		lat = &p.Location.Latitude
		lon = &p.Location.Longitude
	}

	query := `
		INSERT INTO profiles (name, version, birth_date, birth_time, place, latitude, longitude, timezone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE SET
			version    = profiles.version + 1,
			birth_date = EXCLUDED.birth_date,
			birth_time = EXCLUDED.birth_time,
			place      = EXCLUDED.place,
			latitude   = EXCLUDED.latitude,
			longitude  = EXCLUDED.longitude,
			timezone   = EXCLUDED.timezone
		RETURNING version`

	var version int
	err := r.db.Pool.QueryRow(ctx, query,
		p.Name, p.Version, p.BirthDate, p.BirthTime,
		place, lat, lon, timezone, p.CreatedAt,
	).Scan(&version)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.Name, err)
	}
	p.Version = version

	r.logger.WithFields(map[string]interface{}{
		"profile": p.Name,
		"version": p.Version,
	}).Info("Profile saved")
	return nil
}

// Load reads one profile by name
func (r *Repository) Load(ctx context.Context, name string) (*contracts.Profile, error) {
	query := `
		SELECT name, version, birth_date, birth_time, place, latitude, longitude, timezone, created_at
		FROM profiles WHERE name = $1`

	var p contracts.Profile
	var place, timezone string
	var lat, lon *float64
	err := r.db.Pool.QueryRow(ctx, query, name).Scan(
		&p.Name, &p.Version, &p.BirthDate, &p.BirthTime,
		&place, &lat, &lon, &timezone, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", contracts.ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", name, err)
	}

	if lat != nil && lon != nil {
		p.Location = &contracts.Location{
			Place:     place,
			Latitude:  *lat,
			Longitude: *lon,
			Timezone:  timezone,
		}
	}
	p.BirthDate = p.BirthDate.UTC()
	return &p, nil
}

// List returns all stored profiles ordered by name
func (r *Repository) List(ctx context.Context) ([]*contracts.Profile, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT name FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]*contracts.Profile, 0, len(names))
	for _, name := range names {
		p, err := r.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Delete removes a stored profile
func (r *Repository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM profiles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", contracts.ErrProfileNotFound, name)
	}
	r.logger.WithField("profile", name).Info("Profile deleted")
	return nil
}

// SaveReport archives an assembled daily report as JSONB
func (r *Repository) SaveReport(ctx context.Context, rep *contracts.DailyReport) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	query := `
		INSERT INTO daily_reports (profile_name, profile_version, date, report)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_name, profile_version, date)
		DO UPDATE SET report = EXCLUDED.report`

	_, err = r.db.Pool.Exec(ctx, query,
		rep.Profile.Name, rep.Profile.Version, rep.Date, payload)
	if err != nil {
		return fmt.Errorf("save report %s/%s: %w",
			rep.Profile.Name, rep.Date.Format(contracts.DateLayout), err)
	}
	return nil
}

// GetReport loads an archived report for one profile version and date
func (r *Repository) GetReport(ctx context.Context, ref contracts.ProfileRef, date time.Time) (*contracts.DailyReport, error) {
	query := `
		SELECT report FROM daily_reports
		WHERE profile_name = $1 AND profile_version = $2 AND date = $3`

	var payload []byte
	err := r.db.Pool.QueryRow(ctx, query, ref.Name, ref.Version, date).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: report %s/%s", contracts.ErrProfileNotFound,
			ref.Name, date.Format(contracts.DateLayout))
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	var rep contracts.DailyReport
	if err := json.Unmarshal(payload, &rep); err != nil {
		return nil, fmt.Errorf("parse archived report: %w", err)
	}
	return &rep, nil
}
