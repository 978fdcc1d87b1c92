package commands

import (
	"context"
	"fmt"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/internal/geocoding"
	"github.com/smilintux/skyforge/internal/profiles"
	"github.com/smilintux/skyforge/internal/report"
	"github.com/smilintux/skyforge/pkg/config"
	"github.com/smilintux/skyforge/pkg/database"
	"github.com/smilintux/skyforge/pkg/logger"
	"github.com/smilintux/skyforge/pkg/redis"
)

// runtime wires the shared services every command needs: config,
// logger, strategy, profile store, and report service. Postgres and
// Redis attach only when enabled in config; the default footprint is
// flat files and no cache.
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	strategy *alignconfig.Config
	store    contracts.ProfileStore
	service  *report.Service
	geocoder *geocoding.Client

	db  *database.DB
	rds *redis.Client
}

// newRuntime builds the runtime from environment config and global flags
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if strategyFile != "" {
		cfg.StrategyFile = strategyFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	strategy, err := loadStrategy(cfg)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:      cfg,
		log:      log,
		strategy: strategy,
		geocoder: geocoding.New(cfg, log),
	}

	var repo *profiles.Repository
	if cfg.Database.Enabled {
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		rt.db = db
		repo = profiles.NewRepository(db, log)
		rt.store = repo
		log.Info("Using Postgres profile store")
	} else {
		store, err := profiles.NewFileStore(cfg.DataDir, log)
		if err != nil {
			return nil, err
		}
		rt.store = store
		log.WithField("dir", cfg.DataDir).Debug("Using file profile store")
	}

	rt.service = report.NewService(strategy, log)
	if repo != nil {
		rt.service.WithRepository(repo)
	}

	if cfg.Redis.Enabled {
		rds, err := redis.New(cfg)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, running without report cache")
		} else if rds.Enabled() {
			rt.rds = rds
			rt.service.WithCache(report.NewRedisReportCache(rds))
			log.Info("Report cache enabled")
		}
	}

	return rt, nil
}

// Close releases database and cache connections
func (rt *runtime) Close() {
	if rt.db != nil {
		rt.db.Close()
	}
	if rt.rds != nil {
		if err := rt.rds.Close(); err != nil {
			rt.log.WithError(err).Warn("Failed to close Redis client")
		}
	}
}

// loadStrategy loads the strategy file or falls back to the embedded
// defaults
func loadStrategy(cfg *config.Config) (*alignconfig.Config, error) {
	if cfg.StrategyFile == "" {
		return alignconfig.Default(), nil
	}
	strategy, _, err := alignconfig.Load(cfg.StrategyFile)
	if err != nil {
		return nil, fmt.Errorf("load strategy %s: %w", cfg.StrategyFile, err)
	}
	return strategy, nil
}
