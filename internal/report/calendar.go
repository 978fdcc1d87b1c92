package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smilintux/skyforge/internal/calculators"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// defaultWorkers bounds the per-day fan-out of a calendar build
const defaultWorkers = 8

// BuildOptions tunes a calendar build
type BuildOptions struct {
	// Strict aborts the whole build on the first failed day. Default is
	// partial results with per-day error markers.
	Strict bool
	// Workers overrides the concurrency limit (0 = default)
	Workers int
}

// Builder produces calendars by assembling one report per day across an
// inclusive range. Days are independent, so they run concurrently; the
// per-profile context is computed once and shared read-only.
type Builder struct {
	assembler *Assembler
	logger    *logger.Logger
}

// NewBuilder creates a calendar builder
func NewBuilder(assembler *Assembler, log *logger.Logger) *Builder {
	return &Builder{assembler: assembler, logger: log}
}

// ComputeRange builds the calendar for [start, end], both inclusive.
// Cancellation is cooperative at day granularity: already-assembled
// reports remain valid and are returned alongside markers for the days
// that never ran.
func (b *Builder) ComputeRange(ctx context.Context, profile *contracts.Profile, start, end time.Time, opts BuildOptions) (*contracts.Calendar, error) {
	if err := contracts.ValidateRange(start, end); err != nil {
		return nil, err
	}

	pc, err := calculators.NewProfileContext(profile)
	if err != nil {
		return nil, err
	}

	days := int(almanacDays(start, end))
	reports := make([]*contracts.DailyReport, days)
	dayErrs := make([]error, days)

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	b.logger.WithFields(map[string]interface{}{
		"profile": profile.Name,
		"start":   start.Format(contracts.DateLayout),
		"end":     end.Format(contracts.DateLayout),
		"days":    days,
	}).Info("Starting calendar build")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < days; i++ {
		i := i
		date := start.AddDate(0, 0, i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				dayErrs[i] = err
				if opts.Strict {
					return err
				}
				return nil
			}

			report, err := b.computeOne(gctx, pc, date)
			if err != nil {
				dayErrs[i] = err
				if opts.Strict {
					return fmt.Errorf("day %s: %w", date.Format(contracts.DateLayout), err)
				}
				return nil
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cal := &contracts.Calendar{
		Profile: profile.Ref(),
		Start:   start,
		End:     end,
	}
	for i := 0; i < days; i++ {
		if reports[i] != nil {
			cal.Days = append(cal.Days, reports[i])
			continue
		}
		msg := "not computed"
		if dayErrs[i] != nil {
			msg = dayErrs[i].Error()
		}
		cal.Errors = append(cal.Errors, contracts.DayError{
			Date:    start.AddDate(0, 0, i),
			Message: msg,
		})
	}

	b.logger.WithFields(map[string]interface{}{
		"profile":  profile.Name,
		"days":     cal.Len(),
		"failures": len(cal.Errors),
	}).Info("Calendar build completed")

	// A cancelled non-strict build still hands back the partial calendar
	if err := ctx.Err(); err != nil {
		return cal, err
	}
	return cal, nil
}

// ComputeMonth builds the calendar covering one calendar month
func (b *Builder) ComputeMonth(ctx context.Context, profile *contracts.Profile, year int, month time.Month, opts BuildOptions) (*contracts.Calendar, error) {
	start := contracts.NewDate(year, month, 1)
	end := start.AddDate(0, 1, -1)
	return b.ComputeRange(ctx, profile, start, end, opts)
}

// ComputeYear builds the calendar covering one calendar year
func (b *Builder) ComputeYear(ctx context.Context, profile *contracts.Profile, year int, opts BuildOptions) (*contracts.Calendar, error) {
	start := contracts.NewDate(year, time.January, 1)
	end := contracts.NewDate(year, time.December, 31)
	return b.ComputeRange(ctx, profile, start, end, opts)
}

// computeOne assembles a single day, converting a calculator panic into
// a day error so one bad day cannot take down its siblings
func (b *Builder) computeOne(ctx context.Context, pc *calculators.ProfileContext, date time.Time) (report *contracts.DailyReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("day computation panicked: %v", r)
		}
	}()
	return b.assembler.assemble(ctx, pc, date), nil
}

// almanacDays counts inclusive days between two UTC-midnight dates
func almanacDays(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours()/24) + 1
}
