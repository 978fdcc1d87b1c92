package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/render"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report <profile> [date]",
	Short: "Compute the daily alignment report",
	Long: `Computes the full daily alignment report for a stored profile.

The date defaults to today (UTC). The same profile and date always
produce the same report.

Example:
  go run ./cmd/skyforge report jane
  go run ./cmd/skyforge report jane 2026-03-20 --format json
  go run ./cmd/skyforge report jane 2026-03-20 --format markdown --output report.md`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReport,
}

var (
	reportFormat string
	reportOutput string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFormat, "format", "terminal", "output format (terminal|json|markdown|csv)")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "write to file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
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

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if len(args) == 2 {
		date, err = contracts.ParseDate(args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[1])
		}
	}

	renderer, err := render.For(reportFormat)
	if err != nil {
		return err
	}

	rep, err := rt.service.ComputeDay(ctx, profile, date)
	if err != nil {
		return err
	}

	out := os.Stdout
	if reportOutput != "" {
		f, err := os.Create(reportOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := renderer.RenderReport(out, rep); err != nil {
		return err
	}

	if reportOutput != "" {
		PrintSuccess(fmt.Sprintf("Report written to %s", reportOutput))
	}
	return nil
}
