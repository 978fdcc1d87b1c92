package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenClient returns an enabled client whose connection always fails
func brokenClient() *Client {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     100 * time.Millisecond,
		MaxRetries:      -1,
		PoolTimeout:     100 * time.Millisecond,
		MinIdleConns:    0,
		ConnMaxIdleTime: -1,
	})
	return &Client{rdb: rdb, enabled: true}
}

func TestCacheDisabledIsAlwaysMiss(t *testing.T) {
	cache := NewCache(&Client{enabled: false}, "skyforge:test")
	ctx := context.Background()

	var dest string
	found, err := cache.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, cache.Set(ctx, "k", "v", 0))
	assert.NoError(t, cache.Delete(ctx, "k"))
}

func TestCacheGetSurfacesTransportError(t *testing.T) {
	cache := NewCache(brokenClient(), "skyforge:test")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var dest string
	found, err := cache.Get(ctx, "k", &dest)
	assert.False(t, found)
	require.Error(t, err, "a connection failure is not a cache miss")
	assert.Contains(t, err.Error(), "cache read failed")
}

func TestCacheSetSurfacesTransportError(t *testing.T) {
	cache := NewCache(brokenClient(), "skyforge:test")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, cache.Set(ctx, "k", "v", 0))
}

func TestCacheFullKey(t *testing.T) {
	cache := NewCache(&Client{enabled: false}, "skyforge:report")
	assert.Equal(t, "skyforge:report:cache:jane:v1:2026-03-20", cache.fullKey("jane:v1:2026-03-20"))
}
