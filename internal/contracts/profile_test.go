package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr bool
	}{
		{
			name:    "minimal valid",
			profile: &Profile{Name: "jane", BirthDate: NewDate(1992, time.June, 21)},
		},
		{
			name: "full valid",
			profile: &Profile{
				Name:      "jane",
				BirthDate: NewDate(1992, time.June, 21),
				BirthTime: "08:30",
				Location: &Location{
					Place: "Chicago", Latitude: 41.8781, Longitude: -87.6298,
					Timezone: "America/Chicago",
				},
			},
		},
		{name: "nil profile", profile: nil, wantErr: true},
		{name: "empty name", profile: &Profile{Name: "  ", BirthDate: NewDate(1992, time.June, 21)}, wantErr: true},
		{name: "name with slash", profile: &Profile{Name: "a/b", BirthDate: NewDate(1992, time.June, 21)}, wantErr: true},
		{name: "name with traversal", profile: &Profile{Name: "../../escaped", BirthDate: NewDate(1992, time.June, 21)}, wantErr: true},
		{name: "name with backslash", profile: &Profile{Name: `a\b`, BirthDate: NewDate(1992, time.June, 21)}, wantErr: true},
		{name: "missing birth date", profile: &Profile{Name: "jane"}, wantErr: true},
		{
			name:    "malformed birth time",
			profile: &Profile{Name: "jane", BirthDate: NewDate(1992, time.June, 21), BirthTime: "8h30"},
			wantErr: true,
		},
		{
			name:    "out of range birth time",
			profile: &Profile{Name: "jane", BirthDate: NewDate(1992, time.June, 21), BirthTime: "24:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrProfileInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("jane"))
	require.NoError(t, ValidateName("jane-doe_2"))

	for _, name := range []string{"", "  ", "../../escaped", "a/b", `a\b`, "a..b"} {
		assert.ErrorIs(t, ValidateName(name), ErrProfileInvalid, "name %q", name)
	}
}

func TestProfileFallbackPredicates(t *testing.T) {
	p := &Profile{Name: "jane", BirthDate: NewDate(1992, time.June, 21)}
	assert.False(t, p.HasBirthTime())
	assert.False(t, p.HasLocation())

	p.BirthTime = "08:30"
	assert.True(t, p.HasBirthTime())

	// A location without a timezone still forces the UTC fallback
	p.Location = &Location{Place: "Somewhere", Latitude: 1, Longitude: 2}
	assert.False(t, p.HasLocation())
	p.Location.Timezone = "Europe/Lisbon"
	assert.True(t, p.HasLocation())
}

func TestCacheKey(t *testing.T) {
	p := &Profile{Name: "jane", Version: 3, BirthDate: NewDate(1992, time.June, 21)}
	key := p.CacheKey(NewDate(2026, time.March, 20))
	assert.Equal(t, "jane:v3:2026-03-20", key)
}

func TestParseTimeOfDay(t *testing.T) {
	h, m, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 30, m)

	h, m, err = ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)

	for _, bad := range []string{"", "12", "25:00", "12:60", "ab:cd", "-1:30"} {
		_, _, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-20")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 20), d)
	assert.Equal(t, time.UTC, d.Location())

	for _, bad := range []string{"", "20-03-2026", "2026/03/20", "2026-13-01"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestValidateRange(t *testing.T) {
	start := NewDate(2026, time.January, 1)

	assert.NoError(t, ValidateRange(start, start))
	assert.NoError(t, ValidateRange(start, NewDate(2026, time.December, 31)))

	err := ValidateRange(start, NewDate(2025, time.December, 31))
	assert.ErrorIs(t, err, ErrDateRangeInvalid)

	err = ValidateRange(time.Time{}, start)
	assert.ErrorIs(t, err, ErrDateRangeInvalid)

	// Exactly ten years is allowed; one day more is not
	assert.NoError(t, ValidateRange(start, start.AddDate(0, 0, MaxRangeDays-1)))
	err = ValidateRange(start, start.AddDate(0, 0, MaxRangeDays))
	assert.ErrorIs(t, err, ErrDateRangeInvalid)
}
