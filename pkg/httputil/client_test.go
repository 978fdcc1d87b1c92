package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/pkg/logger"
)

func TestNewDefaults(t *testing.T) {
	client := New(logger.NewNop())

	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.True(t, client.retryConfig.Enabled)
	assert.Equal(t, 3, client.retryConfig.MaxRetries)
	assert.Nil(t, client.limiter)
}

func TestNewWithTimeout(t *testing.T) {
	client := NewWithTimeout(logger.NewNop(), 5*time.Second)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestWithRetry(t *testing.T) {
	client := New(logger.NewNop()).WithRetry(5, 100*time.Millisecond)

	assert.Equal(t, 5, client.retryConfig.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, client.retryConfig.InitialDelay)
	assert.True(t, client.retryConfig.Enabled)
}

func TestDisableRetry(t *testing.T) {
	client := New(logger.NewNop()).DisableRetry()
	assert.False(t, client.retryConfig.Enabled)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		statusCode int
		retryable  bool
	}{
		{http.StatusOK, false},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.retryable, IsRetryableError(tt.statusCode),
			"status %d", tt.statusCode)
	}
}

func TestGetSendsHeaders(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(logger.NewNop())
	resp, err := client.Get(context.Background(), srv.URL, map[string]string{
		"User-Agent": "skyforge-test/1.0",
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "skyforge-test/1.0", gotAgent)
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"jane","version":3}`))
	}))
	defer srv.Close()

	var dest struct {
		Name    string `json:"name"`
		Version int    `json:"version"`
	}
	client := New(logger.NewNop())
	require.NoError(t, client.GetJSON(context.Background(), srv.URL, nil, &dest))

	assert.Equal(t, "jane", dest.Name)
	assert.Equal(t, 3, dest.Version)
}

func TestGetJSONNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no such place"))
	}))
	defer srv.Close()

	var dest map[string]interface{}
	client := New(logger.NewNop())
	err := client.GetJSON(context.Background(), srv.URL, nil, &dest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no such place")
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(logger.NewNop()).WithRetry(3, 10*time.Millisecond)
	resp, err := client.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(logger.NewNop()).WithRetry(2, 5*time.Millisecond)
	resp, err := client.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestNoRetryWhenDisabled(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(logger.NewNop()).DisableRetry()
	resp, err := client.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryHonoursContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := New(logger.NewNop()).WithRetry(5, 10*time.Second)
	_, err := client.Get(ctx, srv.URL, nil)
	assert.Error(t, err)
}

func TestWithRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(logger.NewNop()).WithRateLimit(100)
	require.NotNil(t, client.limiter)

	start := time.Now()
	for i := 0; i < 3; i++ {
		resp, err := client.Get(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		resp.Body.Close()
	}
	// 100/s with burst 1 spaces requests roughly 10ms apart
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}
