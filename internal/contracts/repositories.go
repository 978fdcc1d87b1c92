package contracts

import (
	"context"
	"time"
)

// ProfileStore abstracts profile persistence (flat files or Postgres).
// The core treats loaded profiles as already-validated input.
type ProfileStore interface {
	Save(ctx context.Context, p *Profile) error
	Load(ctx context.Context, name string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Delete(ctx context.Context, name string) error
}

// ReportRepository persists assembled daily reports for audit and reuse
type ReportRepository interface {
	SaveReport(ctx context.Context, r *DailyReport) error
	GetReport(ctx context.Context, ref ProfileRef, date time.Time) (*DailyReport, error)
}

// ReportCache is a read-through cache over ComputeDay. Reports are
// immutable per (profile version, date) so entries never need eviction.
type ReportCache interface {
	Get(ctx context.Context, key string) (*DailyReport, bool, error)
	Set(ctx context.Context, key string, r *DailyReport) error
}
