package calculators

import (
	"time"

	"github.com/smilintux/skyforge/internal/almanac"
	"github.com/smilintux/skyforge/internal/contracts"
)

// ProfileContext carries the per-profile constants shared by every
// calculator: birth Julian day, life path, natal Sun position, resolved
// timezone. Computed once per profile, then read-only, so a calendar
// build never re-derives them and every day in the range sees identical
// values. Concurrent readers need no synchronization.
type ProfileContext struct {
	Profile *contracts.Profile

	// Loc is the profile's resolved timezone (UTC on fallback)
	Loc *time.Location
	// TimezoneFallback is set when the location/timezone was absent or
	// unresolvable and UTC was assumed
	TimezoneFallback bool
	// NoonFallback is set when the birth time was absent and noon assumed
	NoonFallback bool

	BirthJDN int64

	LifePath       int
	LifePathMaster bool

	// NatalSunLongitude at the (possibly defaulted) birth moment, 4 dp
	NatalSunLongitude float64
	NatalSunGate      int
	NatalSunLine      int
}

// NewProfileContext validates the profile and precomputes shared
// constants. The only failure mode is a structurally invalid profile.
func NewProfileContext(p *contracts.Profile) (*ProfileContext, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pc := &ProfileContext{Profile: p}

	tzName := ""
	if p.HasLocation() {
		tzName = p.Location.Timezone
	}
	pc.Loc, pc.TimezoneFallback = almanac.ResolveTimezone(tzName)

	pc.BirthJDN = almanac.JDNOf(p.BirthDate)
	pc.LifePath, pc.LifePathMaster = LifePath(p.BirthDate)

	// Natal Sun at the birth moment. Noon default when no time known.
	hour, minute := 12, 0
	if p.HasBirthTime() {
		hour, minute, _ = contracts.ParseTimeOfDay(p.BirthTime)
	} else {
		pc.NoonFallback = true
	}
	birthMoment := time.Date(p.BirthDate.Year(), p.BirthDate.Month(), p.BirthDate.Day(),
		hour, minute, 0, 0, pc.Loc)
	d := birthMoment.Sub(almanac.J2000).Seconds() / 86400.0
	pc.NatalSunLongitude = almanac.Round4(almanac.SunLongitude(d))
	pc.NatalSunGate, pc.NatalSunLine = GateFromLongitude(pc.NatalSunLongitude)

	return pc, nil
}

// DaysSinceJ2000 returns fractional days from J2000 to noon of the
// target civil date in the profile's resolved timezone
func (pc *ProfileContext) DaysSinceJ2000(date time.Time) float64 {
	return almanac.DaysSinceJ2000(date, pc.Loc)
}

// sunLongitudeRounded is the fixed-precision Sun longitude every
// calculator shares, so gate and sign placements always agree
func sunLongitudeRounded(d float64) float64 {
	return almanac.Round4(almanac.SunLongitude(d))
}
