package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smilintux/skyforge/internal/scheduler"
	"github.com/smilintux/skyforge/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the daily report scheduler",
	Long: `Runs the scheduler that renders today's report for every stored
profile on a cron schedule and writes the output files under the
output directory.

The schedule comes from DAILY_REPORT_CRON (default 06:00 daily).

Example:
  go run ./cmd/skyforge scheduler
  go run ./cmd/skyforge scheduler --formats json,markdown
  go run ./cmd/skyforge scheduler --run-now`,
	RunE: runScheduler,
}

var (
	schedulerFormats string
	schedulerRunNow  bool
)

func init() {
	rootCmd.AddCommand(schedulerCmd)

	schedulerCmd.Flags().StringVar(&schedulerFormats, "formats", "json", "comma-separated output formats")
	schedulerCmd.Flags().BoolVar(&schedulerRunNow, "run-now", false, "run the daily report job immediately on start")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	formats := strings.Split(schedulerFormats, ",")
	for i := range formats {
		formats[i] = strings.TrimSpace(formats[i])
	}

	job, err := jobs.NewDailyReportJob(
		rt.store, rt.service, formats,
		rt.cfg.OutputDir, rt.cfg.DailyReportCron, rt.log)
	if err != nil {
		return err
	}

	sched := scheduler.New(rt.log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	PrintHeader("Skyforge Scheduler")
	PrintKeyValue("Job", job.Name(), 10)
	PrintKeyValue("Schedule", job.Schedule(), 10)
	PrintKeyValue("Output", rt.cfg.OutputDir, 10)
	PrintSeparator()
	fmt.Println("Press Ctrl+C to stop")

	if schedulerRunNow {
		if err := sched.RunJob(job.Name()); err != nil {
			return err
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}
