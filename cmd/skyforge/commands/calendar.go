package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/render"
	"github.com/smilintux/skyforge/internal/report"
)

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar <profile>",
	Short: "Compute an alignment calendar for a date range",
	Long: `Computes daily alignment reports for every day of a range and
assembles them into a calendar.

The range is given either as --start/--end, as --month YYYY-MM, or as
--year YYYY. Days are computed in parallel; a failing day is recorded
as an error marker unless --strict is set.

Example:
  go run ./cmd/skyforge calendar jane --month 2026-03
  go run ./cmd/skyforge calendar jane --year 2026 --format csv --output 2026.csv
  go run ./cmd/skyforge calendar jane --start 2026-03-01 --end 2026-03-14 --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runCalendar,
}

var (
	calendarStart   string
	calendarEnd     string
	calendarMonth   string
	calendarYear    int
	calendarStrict  bool
	calendarWorkers int
	calendarFormat  string
	calendarOutput  string
)

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringVar(&calendarStart, "start", "", "range start date (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calendarEnd, "end", "", "range end date (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "whole month (YYYY-MM)")
	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "whole year (YYYY)")
	calendarCmd.Flags().BoolVar(&calendarStrict, "strict", false, "abort on the first failing day")
	calendarCmd.Flags().IntVar(&calendarWorkers, "workers", 0, "parallel workers (default 8)")
	calendarCmd.Flags().StringVar(&calendarFormat, "format", "terminal", "output format (terminal|json|markdown|csv)")
	calendarCmd.Flags().StringVar(&calendarOutput, "output", "", "write to file instead of stdout")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	profile, err := rt.store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	renderer, err := render.For(calendarFormat)
	if err != nil {
		return err
	}

	opts := report.BuildOptions{
		Strict:  calendarStrict,
		Workers: calendarWorkers,
	}

	var cal *contracts.Calendar
	switch {
	case calendarMonth != "":
		month, err := time.Parse("2006-01", calendarMonth)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", calendarMonth)
		}
		cal, err = rt.service.ComputeMonth(ctx, profile, month.Year(), month.Month(), opts)
		if err != nil {
			return err
		}
	case calendarYear != 0:
		cal, err = rt.service.ComputeYear(ctx, profile, calendarYear, opts)
		if err != nil {
			return err
		}
	case calendarStart != "" && calendarEnd != "":
		start, err := contracts.ParseDate(calendarStart)
		if err != nil {
			return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", calendarStart)
		}
		end, err := contracts.ParseDate(calendarEnd)
		if err != nil {
			return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", calendarEnd)
		}
		cal, err = rt.service.ComputeRange(ctx, profile, start, end, opts)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("specify a range: --start/--end, --month, or --year")
	}

	out := os.Stdout
	if calendarOutput != "" {
		f, err := os.Create(calendarOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := renderer.RenderCalendar(out, cal); err != nil {
		return err
	}

	if len(cal.Errors) > 0 {
		PrintWarning(fmt.Sprintf("%d of %d days failed to compute", len(cal.Errors), cal.Len()+len(cal.Errors)))
	}
	if calendarOutput != "" {
		PrintSuccess(fmt.Sprintf("Calendar written to %s", calendarOutput))
	}
	return nil
}
