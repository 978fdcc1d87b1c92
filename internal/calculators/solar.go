package calculators

import (
	"context"
	"math"
	"time"

	"github.com/smilintux/skyforge/internal/almanac"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// meanSolarMotion is the Sun's mean daily motion in ecliptic longitude
const meanSolarMotion = 0.9856474

// SolarCalculator derives the transit Sun position and the solar-return
// house focus relative to the natal Sun
type SolarCalculator struct {
	logger *logger.Logger
}

// NewSolarCalculator creates a new solar calculator
func NewSolarCalculator(log *logger.Logger) *SolarCalculator {
	return &SolarCalculator{logger: log}
}

// Compute calculates the solar result for the target date
func (c *SolarCalculator) Compute(ctx context.Context, pc *ProfileContext, date time.Time) contracts.SolarResult {
	result := contracts.SolarResult{
		Meta: contracts.ResultMeta{Domain: contracts.DomainSolar},
	}
	if pc.TimezoneFallback {
		result.Meta.MarkDegraded(contracts.FallbackUTC)
	}

	d := pc.DaysSinceJ2000(date)
	lon := sunLongitudeRounded(d)

	result.Longitude = lon
	result.Sign = almanac.SignFromLongitude(lon)
	result.Element = almanac.SignElement(result.Sign)
	result.Modality = almanac.SignModality(result.Sign)

	result.HouseFocus = almanac.HouseFocus(pc.NatalSunLongitude, lon)
	result.HouseTheme = almanac.HouseThemes[result.HouseFocus]

	// Days until the transiting Sun next reaches the natal longitude,
	// from the remaining arc at mean solar motion
	arc := almanac.NormalizeDegrees(pc.NatalSunLongitude - lon)
	result.DaysToSolarReturn = int(math.Round(arc / meanSolarMotion))

	c.logger.WithFields(map[string]interface{}{
		"date":  date.Format(contracts.DateLayout),
		"sign":  result.Sign,
		"house": result.HouseFocus,
	}).Debug("Calculated solar result")

	return result
}
