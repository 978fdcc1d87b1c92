package calculators

import (
	"context"
	"time"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// hexagramNames indexed by hexagram number 1-64 (index 0 unused),
// Wilhelm translation titles
var hexagramNames = [65]string{
	"",
	"The Creative", "The Receptive", "Difficulty at the Beginning", "Youthful Folly",
	"Waiting", "Conflict", "The Army", "Holding Together",
	"The Taming Power of the Small", "Treading", "Peace", "Standstill",
	"Fellowship with Men", "Possession in Great Measure", "Modesty", "Enthusiasm",
	"Following", "Work on What Has Been Spoiled", "Approach", "Contemplation",
	"Biting Through", "Grace", "Splitting Apart", "Return",
	"Innocence", "The Taming Power of the Great", "The Corners of the Mouth", "Preponderance of the Great",
	"The Abysmal", "The Clinging", "Influence", "Duration",
	"Retreat", "The Power of the Great", "Progress", "Darkening of the Light",
	"The Family", "Opposition", "Obstruction", "Deliverance",
	"Decrease", "Increase", "Break-through", "Coming to Meet",
	"Gathering Together", "Pushing Upward", "Oppression", "The Well",
	"Revolution", "The Caldron", "The Arousing", "Keeping Still",
	"Development", "The Marrying Maiden", "Abundance", "The Wanderer",
	"The Gentle", "The Joyous", "Dispersion", "Limitation",
	"Inner Truth", "Preponderance of the Small", "After Completion", "Before Completion",
}

// IChingCalculator selects the day's hexagram. The 64-gate wheel and
// the hexagram wheel are the same wheel, so the daily hexagram is the
// transit Sun gate with the Sun line as changing line, and the personal
// hexagram is the natal Sun gate. A documented simplified rule set.
type IChingCalculator struct {
	logger *logger.Logger
}

// NewIChingCalculator creates a new I Ching calculator
func NewIChingCalculator(log *logger.Logger) *IChingCalculator {
	return &IChingCalculator{logger: log}
}

// Compute selects the hexagrams for the target date
func (c *IChingCalculator) Compute(ctx context.Context, pc *ProfileContext, date time.Time) contracts.IChingResult {
	result := contracts.IChingResult{
		Meta: contracts.ResultMeta{Domain: contracts.DomainIChing},
	}
	// The personal hexagram shares the natal Sun's time sensitivity
	if pc.NoonFallback {
		result.Meta.MarkDegraded(contracts.FallbackNoon)
	}

	d := pc.DaysSinceJ2000(date)
	gate, line := GateFromLongitude(sunLongitudeRounded(d))

	result.Hexagram = gate
	result.HexagramName = hexagramNames[gate]
	result.ChangingLine = line
	result.PersonalHexagram = pc.NatalSunGate
	result.PersonalHexagramName = hexagramNames[pc.NatalSunGate]

	c.logger.WithFields(map[string]interface{}{
		"date":     date.Format(contracts.DateLayout),
		"hexagram": result.Hexagram,
		"line":     result.ChangingLine,
	}).Debug("Calculated i ching result")

	return result
}

// HexagramName returns the Wilhelm title for a hexagram number, or ""
// for out-of-range input
func HexagramName(n int) string {
	if n < 1 || n > 64 {
		return ""
	}
	return hexagramNames[n]
}
