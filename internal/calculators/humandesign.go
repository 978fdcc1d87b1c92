package calculators

import (
	"context"
	"math"
	"time"

	"github.com/smilintux/skyforge/internal/almanac"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Gate geometry: the 64-gate wheel divides the ecliptic evenly
const (
	gateSpan = 5.625  // 360 / 64 degrees per gate
	lineSpan = 0.9375 // gateSpan / 6 degrees per line
)

// gateWheel is the gate number for each 5.625-degree segment of ecliptic
// longitude, starting at 0° Aries
var gateWheel = [64]int{
	41, 19, 13, 49, 30, 55, 37, 63, // 0-45 degrees
	22, 36, 25, 17, 21, 51, 42, 3, // 45-90
	27, 24, 2, 23, 8, 20, 16, 35, // 90-135
	45, 12, 15, 52, 39, 53, 62, 56, // 135-180
	31, 33, 7, 4, 29, 59, 40, 64, // 180-225
	47, 6, 46, 18, 48, 57, 32, 50, // 225-270
	28, 44, 1, 43, 14, 34, 9, 5, // 270-315
	26, 11, 10, 58, 38, 54, 61, 60, // 315-360
}

// GateFromLongitude converts an ecliptic longitude to its gate and line
func GateFromLongitude(longitude float64) (gate, line int) {
	lon := almanac.NormalizeDegrees(longitude)
	gate = gateWheel[int(lon/gateSpan)%64]

	line = int(math.Mod(lon, gateSpan)/lineSpan) + 1
	if line > 6 {
		line = 6
	}
	return gate, line
}

// HumanDesignCalculator derives gate activations under a simplified,
// documented single-luminary rule set: the transit Sun gate, its Earth
// opposition, and the natal Sun gate. A full bodygraph would need
// ephemeris positions for all planets; the Sun/Earth pair is the part
// the simplified solar model can place.
type HumanDesignCalculator struct {
	logger *logger.Logger
}

// NewHumanDesignCalculator creates a new Human Design calculator
func NewHumanDesignCalculator(log *logger.Logger) *HumanDesignCalculator {
	return &HumanDesignCalculator{logger: log}
}

// Compute calculates gate activations for the target date
func (c *HumanDesignCalculator) Compute(ctx context.Context, pc *ProfileContext, date time.Time) contracts.HumanDesignResult {
	result := contracts.HumanDesignResult{
		Meta: contracts.ResultMeta{Domain: contracts.DomainHumanDesign},
	}
	// Gate lines span ~0.94 degrees, under one day of solar motion, so
	// the natal activation is time-of-day sensitive
	if pc.NoonFallback {
		result.Meta.MarkDegraded(contracts.FallbackNoon)
	}

	d := pc.DaysSinceJ2000(date)
	sunLon := sunLongitudeRounded(d)

	result.SunGate, result.SunLine = GateFromLongitude(sunLon)
	result.EarthGate, result.EarthLine = GateFromLongitude(sunLon + 180)
	result.NatalSunGate = pc.NatalSunGate
	result.NatalSunLine = pc.NatalSunLine

	c.logger.WithFields(map[string]interface{}{
		"date":     date.Format(contracts.DateLayout),
		"sun_gate": result.SunGate,
		"sun_line": result.SunLine,
	}).Debug("Calculated human design result")

	return result
}
