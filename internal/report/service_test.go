package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/internal/alignconfig"
	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/logger"
)

// memoryCache is an in-memory ReportCache for tests
type memoryCache struct {
	entries map[string]*contracts.DailyReport
	fail    bool
	gets    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*contracts.DailyReport{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*contracts.DailyReport, bool, error) {
	c.gets++
	if c.fail {
		return nil, false, errors.New("cache down")
	}
	r, ok := c.entries[key]
	return r, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, r *contracts.DailyReport) error {
	c.sets++
	if c.fail {
		return errors.New("cache down")
	}
	c.entries[key] = r
	return nil
}

func TestServiceComputeDayCaches(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(alignconfig.Default(), logger.NewNop()).WithCache(cache)

	date := contracts.NewDate(2026, time.March, 20)

	first, err := svc.ComputeDay(context.Background(), specProfile(), date)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.ComputeDay(context.Background(), specProfile(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "cache hit must not rewrite")
	assert.Equal(t, first, second)
}

func TestServiceCacheFailureDegradesToCompute(t *testing.T) {
	cache := newMemoryCache()
	cache.fail = true
	svc := NewService(alignconfig.Default(), logger.NewNop()).WithCache(cache)

	rep, err := svc.ComputeDay(context.Background(), specProfile(), contracts.NewDate(2026, time.March, 20))
	require.NoError(t, err)
	assert.NotNil(t, rep)
}

func TestServiceWithoutCache(t *testing.T) {
	svc := NewService(alignconfig.Default(), logger.NewNop())

	rep, err := svc.ComputeDay(context.Background(), specProfile(), contracts.NewDate(2026, time.March, 20))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Results.Numerology.LifePath)
}

func TestServiceComputeRange(t *testing.T) {
	svc := NewService(alignconfig.Default(), logger.NewNop())

	cal, err := svc.ComputeYear(context.Background(), specProfile(), 2026, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 365, cal.Len())
}
