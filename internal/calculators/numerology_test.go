package calculators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

func TestLifePath(t *testing.T) {
	tests := []struct {
		name   string
		birth  time.Time
		want   int
		master bool
	}{
		// 6 + (2+1 -> 3) + (1+9+9+2=21 -> 3) = 12 -> 3
		{"plain reduction", contracts.NewDate(1992, time.June, 21), 3, false},
		// 1 + 1 + (1+9+8+0=18 -> 9) = 11, kept as master
		{"master 11", contracts.NewDate(1980, time.January, 1), 11, true},
		// 11 + 9 + 2 = 22, kept as master
		{"master 22", contracts.NewDate(2000, time.November, 9), 22, true},
		// 9 + 22 + 2 = 33, kept as master
		{"master 33", contracts.NewDate(2000, time.September, 22), 33, true},
		// 12 -> 3, 25 -> 7, (1+9+8+4=22 master) = 3+7+22 = 32 -> 5
		{"master component folds in", contracts.NewDate(1984, time.December, 25), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, master := LifePath(tt.birth)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.master, master)
		})
	}
}

func TestLifePathAlwaysValid(t *testing.T) {
	valid := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true,
		6: true, 7: true, 8: true, 9: true, 11: true, 22: true, 33: true}

	// Sweep a century of birth dates
	for d := contracts.NewDate(1920, time.January, 1); d.Year() < 2020; d = d.AddDate(0, 0, 37) {
		lp, master := LifePath(d)
		assert.True(t, valid[lp], "life path %d for %s", lp, d.Format(contracts.DateLayout))
		assert.Equal(t, master, lp == 11 || lp == 22 || lp == 33)
	}
}

func TestNumerologyCompute(t *testing.T) {
	pc, err := NewProfileContext(&contracts.Profile{
		Name:      "jane",
		BirthDate: contracts.NewDate(1992, time.June, 21),
	})
	require.NoError(t, err)

	calc := NewNumerologyCalculator(logger.NewNop())
	result := calc.Compute(context.Background(), pc, contracts.NewDate(2026, time.March, 20))

	assert.Equal(t, contracts.DomainNumerology, result.Meta.Domain)
	// Numerology needs only the birth date; it is never degraded
	assert.False(t, result.Meta.Degraded)

	assert.Equal(t, 3, result.LifePath)
	assert.False(t, result.LifePathMaster)
	// 6 + 3 + (2+0+2+6=10 -> 1) = 10 -> 1
	assert.Equal(t, 1, result.PersonalYear)
	// 1 + 3 = 4
	assert.Equal(t, 4, result.PersonalMonth)
	// 4 + 20 = 24 -> 6
	assert.Equal(t, 6, result.PersonalDay)
	// 10 + 3 + 2 = 15 -> 6
	assert.Equal(t, 6, result.UniversalDay)
}

func TestPersonalNumbersStayInRange(t *testing.T) {
	pc, err := NewProfileContext(&contracts.Profile{
		Name:      "sweep",
		BirthDate: contracts.NewDate(1975, time.November, 29),
	})
	require.NoError(t, err)

	calc := NewNumerologyCalculator(logger.NewNop())
	for d := contracts.NewDate(2026, time.January, 1); d.Year() == 2026; d = d.AddDate(0, 0, 1) {
		r := calc.Compute(context.Background(), pc, d)
		for name, v := range map[string]int{
			"personal_year":  r.PersonalYear,
			"personal_month": r.PersonalMonth,
			"personal_day":   r.PersonalDay,
			"universal_day":  r.UniversalDay,
		} {
			assert.GreaterOrEqual(t, v, 1, "%s on %s", name, d.Format(contracts.DateLayout))
			assert.LessOrEqual(t, v, 9, "%s on %s", name, d.Format(contracts.DateLayout))
		}
	}
}
