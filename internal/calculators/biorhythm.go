package calculators

import (
	"context"
	"math"
	"time"

	"github.com/smilintux/skyforge/internal/almanac"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Biorhythm cycle periods in days
const (
	PhysicalCycle     = 23
	EmotionalCycle    = 28
	IntellectualCycle = 33

	// criticalBand: a cycle within this distance of zero marks a
	// critical day (the zero crossing itself rarely lands on a whole day)
	criticalBand = 0.10
)

// Cycle phase labels
const (
	PhaseCritical = "critical"
	PhaseRising   = "rising"
	PhaseFalling  = "falling"
)

// BiorhythmCalculator derives the three sinusoidal cycles from the
// whole-day count between birth and the target date. Integer day
// arithmetic via Julian day numbers; never degraded.
type BiorhythmCalculator struct {
	logger *logger.Logger
}

// NewBiorhythmCalculator creates a new biorhythm calculator
func NewBiorhythmCalculator(log *logger.Logger) *BiorhythmCalculator {
	return &BiorhythmCalculator{logger: log}
}

// Compute calculates cycle values for the target date
func (c *BiorhythmCalculator) Compute(ctx context.Context, pc *ProfileContext, date time.Time) contracts.BiorhythmResult {
	result := contracts.BiorhythmResult{
		Meta: contracts.ResultMeta{Domain: contracts.DomainBiorhythm},
	}

	n := almanac.JDNOf(date) - pc.BirthJDN
	result.DaysAlive = n

	result.Physical = CycleValue(n, PhysicalCycle)
	result.Emotional = CycleValue(n, EmotionalCycle)
	result.Intellectual = CycleValue(n, IntellectualCycle)

	result.PhysicalPhase = cyclePhase(n, PhysicalCycle, result.Physical)
	result.EmotionalPhase = cyclePhase(n, EmotionalCycle, result.Emotional)
	result.IntellectualPhase = cyclePhase(n, IntellectualCycle, result.Intellectual)

	result.CriticalDay = result.PhysicalPhase == PhaseCritical ||
		result.EmotionalPhase == PhaseCritical ||
		result.IntellectualPhase == PhaseCritical

	c.logger.WithFields(map[string]interface{}{
		"date":       date.Format(contracts.DateLayout),
		"days_alive": n,
		"physical":   result.Physical,
		"critical":   result.CriticalDay,
	}).Debug("Calculated biorhythm result")

	return result
}

// CycleValue is sin(2π·n/period) rounded to result precision, ∈ [-1, 1]
func CycleValue(daysAlive int64, period int) float64 {
	// Reduce before the sine so large day counts keep full precision
	phase := float64(daysAlive%int64(period)) / float64(period)
	return almanac.Round4(math.Sin(2 * math.Pi * phase))
}

// cyclePhase labels a cycle critical, rising, or falling. Direction
// comes from the cosine term's sign at the same phase angle.
func cyclePhase(daysAlive int64, period int, value float64) string {
	if math.Abs(value) < criticalBand {
		return PhaseCritical
	}
	phase := float64(daysAlive%int64(period)) / float64(period)
	if math.Cos(2*math.Pi*phase) > 0 {
		return PhaseRising
	}
	return PhaseFalling
}
