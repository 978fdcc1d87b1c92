package calculators

import (
	"context"
	"math"
	"time"

	"github.com/smilintux/skyforge/internal/almanac"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Lunar constants
const (
	// SynodicMonth is the mean length of the lunation cycle in days
	SynodicMonth = 29.530588853

	// newMoonEpochDays is the new moon of 2000-01-06 18:14 UT,
	// expressed as days since J2000
	newMoonEpochDays = 5.2597

	// Mean lunar motion: ecliptic longitude at J2000 and degrees/day
	moonLongitudeAtJ2000 = 218.316
	moonDailyMotion      = 13.176396
)

// moonPhaseNames in octant order around the synodic cycle
var moonPhaseNames = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// MoonCalculator derives lunar phase, sign, and luminaries aspects
// ⭐ SSOT: lunar math lives here and nowhere else
type MoonCalculator struct {
	logger *logger.Logger
}

// NewMoonCalculator creates a new moon calculator
func NewMoonCalculator(log *logger.Logger) *MoonCalculator {
	return &MoonCalculator{logger: log}
}

// Compute calculates the lunar result for the target date. Pure and
// total: identical (profile, date) inputs always produce identical
// output, regardless of host clock or locale.
func (c *MoonCalculator) Compute(ctx context.Context, pc *ProfileContext, date time.Time) contracts.MoonResult {
	result := contracts.MoonResult{
		Meta: contracts.ResultMeta{Domain: contracts.DomainMoon},
	}
	if pc.TimezoneFallback {
		result.Meta.MarkDegraded(contracts.FallbackUTC)
	}

	d := pc.DaysSinceJ2000(date)

	// Synodic-month epoch arithmetic: position in the lunation cycle
	age := math.Mod(d-newMoonEpochDays, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	fraction := almanac.Round4(age / SynodicMonth)
	if fraction >= 1 {
		fraction = 0
	}
	result.PhaseFraction = fraction
	result.PhaseName = phaseNameFromFraction(fraction)
	result.Illumination = almanac.Round4((1 - math.Cos(2*math.Pi*fraction)) / 2)

	// Mean lunar longitude for sign placement
	moonLon := almanac.Round4(almanac.NormalizeDegrees(moonLongitudeAtJ2000 + moonDailyMotion*d))
	result.Longitude = moonLon
	result.Sign = almanac.SignFromLongitude(moonLon)
	result.Element = almanac.SignElement(result.Sign)
	result.Modality = almanac.SignModality(result.Sign)

	// Aspects between the luminaries
	sunLon := almanac.SunLongitude(d)
	if aspect := almanac.MatchAspect(almanac.AngularDistance(sunLon, moonLon)); aspect != nil {
		result.Aspects = []string{almanac.FormatAspect("Sun", "Moon", aspect)}
	}

	c.logger.WithFields(map[string]interface{}{
		"date":     date.Format(contracts.DateLayout),
		"fraction": result.PhaseFraction,
		"phase":    result.PhaseName,
		"sign":     result.Sign,
	}).Debug("Calculated moon result")

	return result
}

// phaseNameFromFraction buckets the cycle position into eight octants
// centered on the cardinal phases
func phaseNameFromFraction(fraction float64) string {
	idx := int(fraction*8+0.5) % 8
	return moonPhaseNames[idx]
}
