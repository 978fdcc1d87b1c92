package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smilintux/skyforge/internal/alignconfig"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show runtime configuration and backend health",
	Long: `Shows the effective configuration, the active alignment strategy,
and the state of the storage backends.

Displayed:
- Environment, data and output directories
- Strategy id and content hash
- Profile store backend and stored profile count
- Postgres and Redis connectivity (when enabled)

Example:
  skyforge status
  skyforge status --strategy ./my-strategy.yaml`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	PrintHeader("Skyforge Status")

	PrintKeyValue("Environment", rt.cfg.Env, 14)
	PrintKeyValue("Data dir", rt.cfg.DataDir, 14)
	PrintKeyValue("Output dir", rt.cfg.OutputDir, 14)

	PrintSeparator()

	PrintKeyValue("Strategy", rt.strategy.Meta.StrategyID, 14)
	if hash, err := alignconfig.Hash(rt.strategy); err == nil {
		PrintKeyValue("Strategy hash", hash[:12], 14)
	}
	source := "embedded defaults"
	if rt.cfg.StrategyFile != "" {
		source = rt.cfg.StrategyFile
	}
	PrintKeyValue("Strategy file", source, 14)

	PrintSeparator()

	backend := "flat files"
	if rt.cfg.Database.Enabled {
		backend = "postgres"
	}
	PrintKeyValue("Profile store", backend, 14)

	stored, err := rt.store.List(ctx)
	if err != nil {
		PrintError(fmt.Sprintf("Profile store unreachable: %v", err))
	} else {
		PrintKeyValue("Profiles", fmt.Sprintf("%d", len(stored)), 14)
	}

	if rt.db != nil {
		if err := rt.db.Ping(ctx); err != nil {
			PrintError(fmt.Sprintf("Postgres: %v", err))
		} else {
			PrintSuccess("Postgres connected")
		}
	}
	switch {
	case rt.rds != nil:
		PrintSuccess("Report cache enabled (Redis)")
	case rt.cfg.Redis.Enabled:
		PrintWarning("Redis enabled in config but unavailable")
	default:
		PrintInfo("Report cache disabled")
	}

	PrintDoubleSeparator()
	return nil
}
