package risk

import (
	"fmt"
	"math"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/almanac"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Aggregator combines all domain results into one risk assessment.
// ⭐ SSOT: the composite score and every warning rule live here.
// Deterministic: fixed weights from the strategy config, fixed rule
// order, no wall-clock access.
type Aggregator struct {
	cfg    *alignconfig.Config
	logger *logger.Logger
}

// NewAggregator creates a new risk aggregator
func NewAggregator(cfg *alignconfig.Config, log *logger.Logger) *Aggregator {
	return &Aggregator{cfg: cfg, logger: log}
}

// Aggregate produces the composite risk for one day's results.
// Score = 100 · Σ weight_d · tension_d, clipped to [0, 100], one
// decimal place. Warnings are emitted domain by domain in fixed order.
func (a *Aggregator) Aggregate(results *contracts.DomainResults) contracts.RiskAssessment {
	w := a.cfg.Risk.WeightsPct

	weighted := float64(w.Biorhythm)/100*biorhythmTension(&results.Biorhythm) +
		float64(w.Moon)/100*moonTension(&results.Moon) +
		float64(w.Numerology)/100*numerologyTension(&results.Numerology) +
		float64(w.Solar)/100*solarTension(&results.Solar) +
		float64(w.HumanDesign)/100*humanDesignTension(&results.HumanDesign) +
		float64(w.IChing)/100*ichingTension(&results.IChing)

	score := almanac.Round(clip(weighted*100, 0, 100), 1)

	assessment := contracts.RiskAssessment{
		Score:    score,
		Level:    levelFor(score),
		Warnings: a.warnings(results),
	}

	a.logger.WithFields(map[string]interface{}{
		"score":    assessment.Score,
		"level":    assessment.Level,
		"warnings": len(assessment.Warnings),
	}).Debug("Aggregated risk assessment")

	return assessment
}

// levelFor buckets a score: low (<35), moderate (<65), high (>=65)
func levelFor(score float64) string {
	switch {
	case score < 35:
		return contracts.RiskLow
	case score < 65:
		return contracts.RiskModerate
	default:
		return contracts.RiskHigh
	}
}

// warnings applies the threshold rules in fixed order: biorhythm
// cycles, critical day, full moon, completion day, challenging hexagram
func (a *Aggregator) warnings(results *contracts.DomainResults) []string {
	t := a.cfg.Risk.Thresholds
	var warnings []string

	b := &results.Biorhythm
	for _, cycle := range []struct {
		name  string
		value float64
	}{
		{"physical", b.Physical},
		{"emotional", b.Emotional},
		{"intellectual", b.Intellectual},
	} {
		if cycle.value <= t.CycleLow {
			warnings = append(warnings, fmt.Sprintf(
				"biorhythm %s cycle below %g (%.4f)", cycle.name, t.CycleLow, cycle.value))
		}
	}
	if b.CriticalDay {
		warnings = append(warnings, "biorhythm critical day: a cycle is crossing zero")
	}

	if math.Abs(results.Moon.PhaseFraction-0.5) <= t.FullMoonBand {
		warnings = append(warnings, "full moon: peak lunar intensity")
	}

	if results.Numerology.PersonalDay == 9 {
		warnings = append(warnings, "personal day 9: completion energy, avoid new beginnings")
	}

	if challengingHexagrams[results.IChing.Hexagram] {
		warnings = append(warnings, fmt.Sprintf(
			"challenging hexagram %d (%s)", results.IChing.Hexagram, results.IChing.HexagramName))
	}

	return warnings
}

// Per-domain tension functions, each mapping a result to [0, 1].
// The rules are fixed and documented here; the weights are config.

// biorhythmTension averages the negative depth of the three cycles and
// adds a bump on critical days
func biorhythmTension(b *contracts.BiorhythmResult) float64 {
	depth := (negDepth(b.Physical) + negDepth(b.Emotional) + negDepth(b.Intellectual)) / 3
	if b.CriticalDay {
		depth += 0.25
	}
	return clip(depth, 0, 1)
}

func negDepth(v float64) float64 {
	if v < 0 {
		return -v
	}
	return 0
}

// moonTension is the illuminated fraction: tension tracks the waxing
// cycle and peaks at the full moon
func moonTension(m *contracts.MoonResult) float64 {
	return clip(m.Illumination, 0, 1)
}

// numerologyTension by personal day: 9 completion, 7 introspection,
// 4 restriction; all other days carry baseline tension
var personalDayTension = map[int]float64{
	9: 0.8,
	7: 0.5,
	4: 0.4,
}

func numerologyTension(n *contracts.NumerologyResult) float64 {
	if v, ok := personalDayTension[n.PersonalDay]; ok {
		return v
	}
	return 0.2
}

// solarTension: houses 6, 8, and 12 (health, transformation, release)
// carry elevated tension
var tenseHouses = map[int]bool{6: true, 8: true, 12: true}

func solarTension(s *contracts.SolarResult) float64 {
	if tenseHouses[s.HouseFocus] {
		return 0.7
	}
	return 0.25
}

// humanDesignTension: the transit Sun re-activating the natal gate
// (the gate echo) concentrates pressure on the natal theme
func humanDesignTension(h *contracts.HumanDesignResult) float64 {
	if h.SunGate == h.NatalSunGate {
		return 0.6
	}
	return 0.3
}

// challengingHexagrams per the classical difficulty readings
var challengingHexagrams = map[int]bool{
	6:  true, // Conflict
	23: true, // Splitting Apart
	29: true, // The Abysmal
	36: true, // Darkening of the Light
	39: true, // Obstruction
	47: true, // Oppression
}

func ichingTension(i *contracts.IChingResult) float64 {
	if challengingHexagrams[i.Hexagram] {
		return 0.8
	}
	return 0.3
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
