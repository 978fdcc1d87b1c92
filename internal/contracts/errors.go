package contracts

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds surfaced by the core. Callers match with errors.Is.
var (
	// ErrProfileInvalid marks a structurally broken profile (missing
	// birth date). Fatal: no computation is performed.
	ErrProfileInvalid = errors.New("profile invalid")

	// ErrDateRangeInvalid marks a reversed or oversized calendar range
	ErrDateRangeInvalid = errors.New("date range invalid")

	// ErrProfileNotFound is returned by profile stores
	ErrProfileNotFound = errors.New("profile not found")
)

// MaxRangeDays caps a calendar build at ten years (including leap days)
const MaxRangeDays = 3653

// ValidateRange checks a calendar range. Start and end are inclusive
// civil dates; end must not precede start and the span must not exceed
// MaxRangeDays.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrDateRangeInvalid)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end %s before start %s",
			ErrDateRangeInvalid, end.Format(DateLayout), start.Format(DateLayout))
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxRangeDays {
		return fmt.Errorf("%w: %d days exceeds maximum of %d",
			ErrDateRangeInvalid, days, MaxRangeDays)
	}
	return nil
}
