package report

import (
	"context"
	"time"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Service is the public surface of the core: ComputeDay and
// ComputeRange, with optional read-through caching and persistence
// layered over the pure assembler.
type Service struct {
	assembler *Assembler
	builder   *Builder

	cache contracts.ReportCache      // optional
	repo  contracts.ReportRepository // optional

	logger *logger.Logger
}

// NewService creates the report service for a strategy
func NewService(strategy *alignconfig.Config, log *logger.Logger) *Service {
	assembler := NewAssembler(strategy, log)
	return &Service{
		assembler: assembler,
		builder:   NewBuilder(assembler, log),
		logger:    log,
	}
}

// WithCache attaches a read-through report cache
func (s *Service) WithCache(cache contracts.ReportCache) *Service {
	s.cache = cache
	return s
}

// WithRepository attaches report persistence
func (s *Service) WithRepository(repo contracts.ReportRepository) *Service {
	s.repo = repo
	return s
}

// ComputeDay returns the daily report, consulting the cache first.
// Cache and persistence failures degrade to a plain compute; they never
// fail the request.
func (s *Service) ComputeDay(ctx context.Context, profile *contracts.Profile, date time.Time) (*contracts.DailyReport, error) {
	key := profile.CacheKey(date)

	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, key); err != nil {
			s.logger.WithError(err).Warn("Report cache read failed")
		} else if found {
			return cached, nil
		}
	}

	report, err := s.assembler.ComputeDay(ctx, profile, date)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report); err != nil {
			s.logger.WithError(err).Warn("Report cache write failed")
		}
	}
	if s.repo != nil {
		if err := s.repo.SaveReport(ctx, report); err != nil {
			s.logger.WithError(err).Warn("Report persistence failed")
		}
	}

	return report, nil
}

// ComputeRange builds the calendar for an inclusive date range
func (s *Service) ComputeRange(ctx context.Context, profile *contracts.Profile, start, end time.Time, opts BuildOptions) (*contracts.Calendar, error) {
	return s.builder.ComputeRange(ctx, profile, start, end, opts)
}

// ComputeMonth builds the calendar for one month
func (s *Service) ComputeMonth(ctx context.Context, profile *contracts.Profile, year int, month time.Month, opts BuildOptions) (*contracts.Calendar, error) {
	return s.builder.ComputeMonth(ctx, profile, year, month, opts)
}

// ComputeYear builds the calendar for one year
func (s *Service) ComputeYear(ctx context.Context, profile *contracts.Profile, year int, opts BuildOptions) (*contracts.Calendar, error) {
	return s.builder.ComputeYear(ctx, profile, year, opts)
}
