package report

import (
	"context"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/redis"
)

// RedisReportCache adapts the generic Redis cache to the ReportCache
// contract. Reports are immutable per (profile version, date), so
// entries are stored without TTL.
type RedisReportCache struct {
	cache *redis.Cache
}

// NewRedisReportCache creates a report cache over a Redis client
func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{cache: redis.NewCache(client, "skyforge:report")}
}

// Get implements contracts.ReportCache
func (c *RedisReportCache) Get(ctx context.Context, key string) (*contracts.DailyReport, bool, error) {
	var report contracts.DailyReport
	found, err := c.cache.Get(ctx, key, &report)
	if err != nil || !found {
		return nil, false, err
	}
	return &report, true, nil
}

// Set implements contracts.ReportCache
func (c *RedisReportCache) Set(ctx context.Context, key string, report *contracts.DailyReport) error {
	return c.cache.Set(ctx, key, report, 0)
}

var _ contracts.ReportCache = (*RedisReportCache)(nil)
