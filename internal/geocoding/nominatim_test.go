package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilintux/skyforge/pkg/config"
	"github.com/smilintux/skyforge/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Geocoding: config.GeocodingConfig{
			BaseURL:       srv.URL,
			UserAgent:     "skyforge-test/1.0",
			RatePerSecond: 1000,
			Timeout:       5 * time.Second,
		},
	}
	return New(cfg, logger.NewNop())
}

func TestResolve(t *testing.T) {
	var gotQuery, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "30.2672123456789", "lon": "-97.7431", "display_name": "Austin, Travis County, Texas"}]`))
	})

	loc, err := client.Resolve(context.Background(), "Austin, TX")
	require.NoError(t, err)
	require.NotNil(t, loc)

	assert.Equal(t, "Austin, TX", gotQuery)
	assert.Equal(t, "skyforge-test/1.0", gotAgent)
	assert.Equal(t, "Austin, TX", loc.Place)
	assert.Equal(t, 30.267212, loc.Latitude, "coordinates rounded to 6 decimals")
	assert.Equal(t, -97.7431, loc.Longitude)
	assert.Empty(t, loc.Timezone, "timezone is not part of geocoding")
}

func TestResolveNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	loc, err := client.Resolve(context.Background(), "Nowhereville Qxzy")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestResolveEmptyPlace(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Resolve(context.Background(), "")
	assert.Error(t, err)
}

func TestResolveBadCoordinates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "thirty", "lon": "-97.7431"}]`))
	})

	_, err := client.Resolve(context.Background(), "Austin, TX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}

func TestResolveServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("blocked"))
	})

	_, err := client.Resolve(context.Background(), "Austin, TX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Austin, TX")
}

func TestRoundCoord(t *testing.T) {
	assert.Equal(t, 30.267212, roundCoord(30.2672123456789))
	assert.Equal(t, -97.743100, roundCoord(-97.7431))
	assert.Equal(t, 0.0, roundCoord(0.0000004))
}
