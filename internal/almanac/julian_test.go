package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJDN(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  int64
	}{
		{"J2000 epoch date", 2000, time.January, 1, 2451545},
		{"day after J2000", 2000, time.January, 2, 2451546},
		{"unix epoch", 1970, time.January, 1, 2440588},
		{"gregorian reform era", 1582, time.October, 15, 2299161},
		{"leap day 2024", 2024, time.February, 29, 2460370},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JDN(tt.year, tt.month, tt.day))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int64
	}{
		{"same day", date(2026, 3, 20), date(2026, 3, 20), 0},
		{"one day", date(2026, 3, 20), date(2026, 3, 21), 1},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"across non-leap february", date(2023, 2, 28), date(2023, 3, 1), 1},
		{"reversed is negative", date(2026, 3, 21), date(2026, 3, 20), -1},
		{"birth to target", date(1992, 6, 21), date(2026, 3, 20), 12325},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestDaysSinceJ2000(t *testing.T) {
	// Noon UTC on the epoch date is exactly zero
	assert.Equal(t, 0.0, DaysSinceJ2000(date(2000, 1, 1), time.UTC))
	// Whole days for UTC
	assert.Equal(t, 1.0, DaysSinceJ2000(date(2000, 1, 2), time.UTC))
	// nil location falls back to UTC
	assert.Equal(t, 5.0, DaysSinceJ2000(date(2000, 1, 6), nil))

	// An eastern zone's noon comes earlier in absolute time
	seoul, err := time.LoadLocation("Asia/Seoul")
	if err == nil {
		d := DaysSinceJ2000(date(2000, 1, 2), seoul)
		assert.InDelta(t, 1.0-9.0/24.0, d, 1e-9)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.1235, Round4(0.12345))
	assert.Equal(t, 0.1234, Round4(0.12344))
	assert.Equal(t, -0.1235, Round4(-0.12345))
	assert.Equal(t, 0.0, Round4(0.00004))
	assert.Equal(t, 42.5, Round(42.46, 1))

	// Idempotent at the target precision
	v := Round4(0.987654321)
	assert.Equal(t, v, Round4(v))
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{720.5, 0.5},
		{-0.5, 359.5},
		{-360, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeDegrees(tt.in), 1e-9, "input %v", tt.in)
	}
}

func TestAngularDistance(t *testing.T) {
	assert.InDelta(t, 0, AngularDistance(10, 10), 1e-9)
	assert.InDelta(t, 20, AngularDistance(10, 350), 1e-9)
	assert.InDelta(t, 180, AngularDistance(0, 180), 1e-9)
	assert.InDelta(t, 90, AngularDistance(45, 315), 1e-9)
}

func TestResolveTimezone(t *testing.T) {
	loc, fallback := ResolveTimezone("")
	assert.Equal(t, time.UTC, loc)
	assert.True(t, fallback)

	loc, fallback = ResolveTimezone("Not/AZone")
	assert.Equal(t, time.UTC, loc)
	assert.True(t, fallback)

	loc, fallback = ResolveTimezone("America/Chicago")
	if !fallback {
		assert.Equal(t, "America/Chicago", loc.String())
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
