package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/render"
	"github.com/smilintux/skyforge/internal/report"
	"github.com/smilintux/skyforge/pkg/logger"
)

// DailyReportJob renders today's report for every stored profile and
// writes the output under <outputDir>/<profile>/<date>.<ext>.
type DailyReportJob struct {
	store     contracts.ProfileStore
	service   *report.Service
	renderers []render.Renderer
	outputDir string
	schedule  string
	logger    *logger.Logger
}

// NewDailyReportJob creates the daily report job
func NewDailyReportJob(
	store contracts.ProfileStore,
	service *report.Service,
	formats []string,
	outputDir string,
	schedule string,
	log *logger.Logger,
) (*DailyReportJob, error) {
	renderers := make([]render.Renderer, 0, len(formats))
	for _, f := range formats {
		r, err := render.For(f)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return &DailyReportJob{
		store:     store,
		service:   service,
		renderers: renderers,
		outputDir: outputDir,
		schedule:  schedule,
		logger:    log,
	}, nil
}

// Name returns the job name
func (j *DailyReportJob) Name() string { return "daily_report" }

// Schedule returns the cron schedule expression
func (j *DailyReportJob) Schedule() string { return j.schedule }

// Run computes and writes today's report for all profiles. A failing
// profile is logged and skipped; the job fails only when every profile
// fails or the store is unreachable.
func (j *DailyReportJob) Run(ctx context.Context) error {
	profiles, err := j.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		j.logger.Info("No profiles stored, daily report job is a no-op")
		return nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	var succeeded int
	for _, p := range profiles {
		if err := j.reportFor(ctx, p, today); err != nil {
			j.logger.WithError(err).Warnf("Daily report failed for profile %s", p.Name)
			continue
		}
		succeeded++
	}

	j.logger.WithFields(map[string]interface{}{
		"date":      today.Format(contracts.DateLayout),
		"profiles":  len(profiles),
		"succeeded": succeeded,
	}).Info("Daily report job finished")

	if succeeded == 0 {
		return fmt.Errorf("daily report failed for all %d profiles", len(profiles))
	}
	return nil
}

func (j *DailyReportJob) reportFor(ctx context.Context, p *contracts.Profile, date time.Time) error {
	rep, err := j.service.ComputeDay(ctx, p, date)
	if err != nil {
		return err
	}

	dir := filepath.Join(j.outputDir, p.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, r := range j.renderers {
		path := filepath.Join(dir, date.Format(contracts.DateLayout)+"."+r.FileExtension())
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		if err := r.RenderReport(f, rep); err != nil {
			f.Close()
			return fmt.Errorf("render %s report: %w", r.Format(), err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
