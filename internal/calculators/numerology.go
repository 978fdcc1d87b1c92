package calculators

import (
	"context"
	"time"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// NumerologyCalculator derives the reduced numbers for a day.
// Pure integer arithmetic on civil dates; never degraded.
type NumerologyCalculator struct {
	logger *logger.Logger
}

// NewNumerologyCalculator creates a new numerology calculator
func NewNumerologyCalculator(log *logger.Logger) *NumerologyCalculator {
	return &NumerologyCalculator{logger: log}
}

// Compute calculates numerology numbers for the target date
func (c *NumerologyCalculator) Compute(ctx context.Context, pc *ProfileContext, date time.Time) contracts.NumerologyResult {
	result := contracts.NumerologyResult{
		Meta: contracts.ResultMeta{Domain: contracts.DomainNumerology},
	}

	result.LifePath = pc.LifePath
	result.LifePathMaster = pc.LifePathMaster

	birth := pc.Profile.BirthDate
	result.PersonalYear = PersonalYear(birth, date.Year())
	result.PersonalMonth = reduceSingle(result.PersonalYear + int(date.Month()))
	result.PersonalDay = reduceSingle(result.PersonalMonth + date.Day())
	result.UniversalDay = UniversalDay(date)

	c.logger.WithFields(map[string]interface{}{
		"date":          date.Format(contracts.DateLayout),
		"life_path":     result.LifePath,
		"personal_day":  result.PersonalDay,
		"universal_day": result.UniversalDay,
	}).Debug("Calculated numerology result")

	return result
}

// LifePath reduces the birth date to the life-path number. Month, day
// and year are reduced independently (masters preserved), summed, then
// reduced again. Result ∈ {1..9, 11, 22, 33}; the bool reports a master.
func LifePath(birth time.Time) (int, bool) {
	m := reduceKeepMasters(int(birth.Month()))
	d := reduceKeepMasters(birth.Day())
	y := reduceKeepMasters(digitSum(birth.Year()))

	lp := reduceKeepMasters(m + d + y)
	return lp, isMaster(lp)
}

// PersonalYear reduces birth month + birth day + target year.
// Personal numbers reduce fully to 1-9; masters apply to life path only.
func PersonalYear(birth time.Time, targetYear int) int {
	return reduceSingle(reduceSingle(int(birth.Month())) +
		reduceSingle(birth.Day()) +
		reduceSingle(digitSum(targetYear)))
}

// UniversalDay reduces the full target date to a single digit
func UniversalDay(date time.Time) int {
	return reduceSingle(digitSum(date.Year()) + digitSum(int(date.Month())) + digitSum(date.Day()))
}

// reduceKeepMasters digit-sums until a single digit or a master number
// (11, 22, 33) is reached
func reduceKeepMasters(n int) int {
	for n > 9 && !isMaster(n) {
		n = digitSum(n)
	}
	return n
}

// reduceSingle digit-sums until a single digit 1-9
func reduceSingle(n int) int {
	for n > 9 {
		n = digitSum(n)
	}
	return n
}

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
