package report

import (
	"context"
	"time"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/calculators"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/risk"
	"github.com/smilintux/skyforge/internal/selection"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Assembler orchestrates the domain calculators, risk aggregator, and
// recommendation selector into one immutable DailyReport.
// ⭐ SSOT: report assembly happens here and nowhere else.
type Assembler struct {
	moon        *calculators.MoonCalculator
	numerology  *calculators.NumerologyCalculator
	solar       *calculators.SolarCalculator
	humanDesign *calculators.HumanDesignCalculator
	iching      *calculators.IChingCalculator
	biorhythm   *calculators.BiorhythmCalculator

	risk     *risk.Aggregator
	selector *selection.Selector

	logger *logger.Logger
}

// NewAssembler creates an assembler wired to the given strategy
func NewAssembler(strategy *alignconfig.Config, log *logger.Logger) *Assembler {
	return &Assembler{
		moon:        calculators.NewMoonCalculator(log),
		numerology:  calculators.NewNumerologyCalculator(log),
		solar:       calculators.NewSolarCalculator(log),
		humanDesign: calculators.NewHumanDesignCalculator(log),
		iching:      calculators.NewIChingCalculator(log),
		biorhythm:   calculators.NewBiorhythmCalculator(log),
		risk:        risk.NewAggregator(strategy, log),
		selector:    selection.NewSelector(strategy, log),
		logger:      log,
	}
}

// ComputeDay assembles the daily report for one profile and date.
// Fails only when the profile is structurally invalid; missing optional
// fields degrade the affected results instead.
func (a *Assembler) ComputeDay(ctx context.Context, profile *contracts.Profile, date time.Time) (*contracts.DailyReport, error) {
	pc, err := calculators.NewProfileContext(profile)
	if err != nil {
		return nil, err
	}
	return a.assemble(ctx, pc, date), nil
}

// assemble builds one day from an already-validated profile context.
// The calculators are independent of each other; invocation order is
// not significant.
func (a *Assembler) assemble(ctx context.Context, pc *calculators.ProfileContext, date time.Time) *contracts.DailyReport {
	results := contracts.DomainResults{
		Moon:        a.moon.Compute(ctx, pc, date),
		Numerology:  a.numerology.Compute(ctx, pc, date),
		Solar:       a.solar.Compute(ctx, pc, date),
		HumanDesign: a.humanDesign.Compute(ctx, pc, date),
		IChing:      a.iching.Compute(ctx, pc, date),
		Biorhythm:   a.biorhythm.Compute(ctx, pc, date),
	}

	report := &contracts.DailyReport{
		Date:           date,
		Profile:        pc.Profile.Ref(),
		Results:        results,
		Risk:           a.risk.Aggregate(&results),
		Recommendation: a.selector.Select(&results),
	}

	a.logger.WithFields(map[string]interface{}{
		"profile": pc.Profile.Name,
		"date":    date.Format(contracts.DateLayout),
		"score":   report.Risk.Score,
	}).Debug("Assembled daily report")

	return report
}
