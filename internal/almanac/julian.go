package almanac

import (
	"math"
	"time"
)

// J2000 is the standard astronomical epoch, 2000-01-01 12:00 TT
// (treated as UT here; the difference is irrelevant at our precision)
var J2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// J2000JDN is the Julian day number of the J2000 epoch date
const J2000JDN int64 = 2451545

// JDN computes the Julian day number for a Gregorian civil date using
// the Fliegel–Van Flandern integer algorithm. Pure integer arithmetic,
// so day counts are identical on every platform.
func JDN(year int, month time.Month, day int) int64 {
	a := int64(14-int(month)) / 12
	y := int64(year) + 4800 - a
	m := int64(int(month)) + 12*a - 3
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNOf computes the Julian day number of a time value's civil date
func JDNOf(t time.Time) int64 {
	return JDN(t.Year(), t.Month(), t.Day())
}

// DaysBetween counts whole civil days from one date to another
func DaysBetween(from, to time.Time) int64 {
	return JDNOf(to) - JDNOf(from)
}

// DaysSinceJ2000 returns fractional days from the J2000 epoch to noon of
// the given civil date in the given zone. With loc = UTC the result is a
// whole number, matching integer JDN arithmetic exactly.
func DaysSinceJ2000(date time.Time, loc *time.Location) float64 {
	if loc == nil {
		loc = time.UTC
	}
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, loc)
	return noon.Sub(J2000).Seconds() / 86400.0
}

// Round rounds to the given number of decimal places.
// Every floating-point value must pass through here (4 places) before it
// enters a DomainResult, so formatted output is byte-reproducible.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Round4 is the standard result precision
func Round4(v float64) float64 {
	return Round(v, 4)
}

// NormalizeDegrees wraps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngularDistance is the shortest separation between two ecliptic
// longitudes, in [0, 180]
func AngularDistance(lon1, lon2 float64) float64 {
	diff := math.Abs(math.Mod(lon1-lon2, 360))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// ResolveTimezone loads an IANA zone, falling back to UTC.
// The second return reports whether the fallback was taken.
func ResolveTimezone(name string) (*time.Location, bool) {
	if name == "" {
		return time.UTC, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, true
	}
	return loc, false
}
