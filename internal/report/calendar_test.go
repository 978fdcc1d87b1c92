package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

func newTestBuilder() *Builder {
	return NewBuilder(newTestAssembler(), logger.NewNop())
}

func TestComputeYearCompleteness(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		year     int
		wantDays int
	}{
		{2026, 365},
		{2024, 366}, // leap year
	}

	for _, tt := range tests {
		cal, err := b.ComputeYear(context.Background(), specProfile(), tt.year, BuildOptions{})
		require.NoError(t, err)
		require.Equal(t, tt.wantDays, cal.Len(), "year %d", tt.year)
		assert.True(t, cal.Complete())

		// Ascending dates, no gaps, no duplicates
		for i, day := range cal.Days {
			want := contracts.NewDate(tt.year, time.January, 1).AddDate(0, 0, i)
			assert.Equal(t, want, day.Date, "index %d", i)
		}
	}
}

func TestComputeMonth(t *testing.T) {
	b := newTestBuilder()

	cal, err := b.ComputeMonth(context.Background(), specProfile(), 2026, time.February, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 28, cal.Len())
	assert.Equal(t, contracts.NewDate(2026, time.February, 1), cal.Start)
	assert.Equal(t, contracts.NewDate(2026, time.February, 28), cal.End)

	leap, err := b.ComputeMonth(context.Background(), specProfile(), 2024, time.February, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 29, leap.Len())
}

func TestComputeRangeValidation(t *testing.T) {
	b := newTestBuilder()
	ctx := context.Background()

	start := contracts.NewDate(2026, time.March, 20)

	_, err := b.ComputeRange(ctx, specProfile(), start, start.AddDate(0, 0, -1), BuildOptions{})
	assert.ErrorIs(t, err, contracts.ErrDateRangeInvalid)

	_, err = b.ComputeRange(ctx, specProfile(), start, start.AddDate(0, 0, contracts.MaxRangeDays), BuildOptions{})
	assert.ErrorIs(t, err, contracts.ErrDateRangeInvalid)

	_, err = b.ComputeRange(ctx, &contracts.Profile{Name: "broken"}, start, start, BuildOptions{})
	assert.ErrorIs(t, err, contracts.ErrProfileInvalid)
}

func TestComputeRangeSingleDay(t *testing.T) {
	b := newTestBuilder()
	date := contracts.NewDate(2026, time.March, 20)

	cal, err := b.ComputeRange(context.Background(), specProfile(), date, date, BuildOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, cal.Len())
	assert.Equal(t, date, cal.Days[0].Date)
}

func TestComputeRangeMatchesComputeDay(t *testing.T) {
	b := newTestBuilder()
	a := newTestAssembler()

	start := contracts.NewDate(2026, time.March, 18)
	end := contracts.NewDate(2026, time.March, 24)

	cal, err := b.ComputeRange(context.Background(), specProfile(), start, end, BuildOptions{Workers: 3})
	require.NoError(t, err)
	require.Equal(t, 7, cal.Len())

	for _, day := range cal.Days {
		single, err := a.ComputeDay(context.Background(), specProfile(), day.Date)
		require.NoError(t, err)
		assert.Equal(t, single, day, "date %s", day.Date.Format(contracts.DateLayout))
	}
}

func TestComputeRangeCancellation(t *testing.T) {
	b := newTestBuilder()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already cancelled before the build starts

	start := contracts.NewDate(2026, time.March, 1)
	end := contracts.NewDate(2026, time.March, 10)

	// Non-strict: partial calendar with markers, plus the context error
	cal, err := b.ComputeRange(ctx, specProfile(), start, end, BuildOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, cal)
	assert.Equal(t, 10, cal.Len()+len(cal.Errors))

	// Strict: the build aborts outright
	_, err = b.ComputeRange(ctx, specProfile(), start, end, BuildOptions{Strict: true})
	assert.ErrorIs(t, err, context.Canceled)
}
