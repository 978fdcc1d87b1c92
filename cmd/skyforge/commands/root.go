package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	strategyFile string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skyforge",
	Short: "Skyforge - deterministic daily alignment engine",
	Long: `Skyforge Unified CLI

Computes deterministic daily alignment reports from a birth profile:
moon phase, numerology, solar position, Human Design gates, I Ching
hexagram, and biorhythm cycles, aggregated into a risk score and
daily recommendations.

Usage:
  go run ./cmd/skyforge [command]

Examples:
  go run ./cmd/skyforge profile add jane --birth-date 1992-06-21
  go run ./cmd/skyforge report jane 2026-03-20
  go run ./cmd/skyforge calendar jane --year 2026 --format csv
  go run ./cmd/skyforge api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&strategyFile, "strategy", "", "strategy YAML file (default is embedded strategy)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
