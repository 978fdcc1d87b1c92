package contracts

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical civil-date format used across the system
const DateLayout = "2006-01-02"

// Profile is the stored birth data used to personalize calculations
// ⭐ SSOT: a profile is immutable once used in a computation.
// Any mutation must bump Version so cached reports stay valid.
type Profile struct {
	Name    string `json:"name"`
	Version int    `json:"version"`

	// BirthDate is a civil date held at UTC midnight
	BirthDate time.Time `json:"birth_date"`

	// BirthTime is "HH:MM" local to the birth location.
	// Empty means unknown; time-sensitive calculators assume noon.
	BirthTime string `json:"birth_time,omitempty"`

	// Location is optional. Absence forces the UTC fallback and marks
	// location-dependent results as degraded.
	Location *Location `json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Location holds a resolved birth location
type Location struct {
	Place     string  `json:"place,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"` // IANA name, e.g. "America/Chicago"
}

// ProfileRef is the read-only identity a report carries back to its profile
type ProfileRef struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// Ref returns the profile's identity reference
func (p *Profile) Ref() ProfileRef {
	return ProfileRef{Name: p.Name, Version: p.Version}
}

// Validate checks structural validity. A missing birth date is the only
// fatal defect; missing optional fields degrade, they never fail.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrProfileInvalid)
	}
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date is required", ErrProfileInvalid)
	}
	if p.BirthTime != "" {
		if _, _, err := ParseTimeOfDay(p.BirthTime); err != nil {
			return fmt.Errorf("%w: %v", ErrProfileInvalid, err)
		}
	}
	return nil
}

// ValidateName checks a profile name. Names become file names and
// cache keys, so path separators and ".." are rejected.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrProfileInvalid)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: name %q must not contain path separators or \"..\"", ErrProfileInvalid, name)
	}
	return nil
}

// HasBirthTime reports whether an explicit birth time is recorded
func (p *Profile) HasBirthTime() bool {
	return p.BirthTime != ""
}

// HasLocation reports whether a resolved location is recorded
func (p *Profile) HasLocation() bool {
	return p.Location != nil && p.Location.Timezone != ""
}

// CacheKey returns the stable cache key for this profile's report on a date
func (p *Profile) CacheKey(date time.Time) string {
	return fmt.Sprintf("%s:v%d:%s", p.Name, p.Version, date.Format(DateLayout))
}

// ParseTimeOfDay parses "HH:MM" into hour and minute
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time of day %q is not HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("time of day %q has invalid hour", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time of day %q has invalid minute", s)
	}
	return hour, minute, nil
}

// NewDate builds a civil date at UTC midnight
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a canonical "YYYY-MM-DD" civil date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
