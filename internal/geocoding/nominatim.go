package geocoding

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/smilintux/skyforge/internal/contracts"
	"github.com/smilintux/skyforge/pkg/config"
	"github.com/smilintux/skyforge/pkg/httputil"
	"github.com/smilintux/skyforge/pkg/logger"
)

// Client resolves place names to coordinates via the Nominatim search
// API. Nominatim's usage policy caps anonymous clients at one request
// per second, so the HTTP client carries a rate limiter.
type Client struct {
	baseURL   string
	userAgent string
	http      *httputil.Client
	logger    *logger.Logger
}

// nominatimResult is one entry of the jsonv2 search response
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// New creates a geocoding client from config
func New(cfg *config.Config, log *logger.Logger) *Client {
	httpClient := httputil.NewWithTimeout(log, cfg.Geocoding.Timeout).
		WithRateLimit(cfg.Geocoding.RatePerSecond)
	return &Client{
		baseURL:   cfg.Geocoding.BaseURL,
		userAgent: cfg.Geocoding.UserAgent,
		http:      httpClient,
		logger:    log,
	}
}

// Resolve looks up a place name. It returns (nil, nil) when the place
// is unknown so callers can fall back to a location-less profile.
func (c *Client) Resolve(ctx context.Context, place string) (*contracts.Location, error) {
	if place == "" {
		return nil, fmt.Errorf("place must not be empty")
	}

	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "jsonv2")
	query.Set("limit", "1")
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	var results []nominatimResult
	headers := map[string]string{"User-Agent": c.userAgent}
	if err := c.http.GetJSON(ctx, endpoint, headers, &results); err != nil {
		return nil, fmt.Errorf("geocoding lookup for %q: %w", place, err)
	}

	if len(results) == 0 {
		c.logger.WithField("place", place).Warn("Geocoding returned no results")
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding returned invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding returned invalid longitude %q: %w", results[0].Lon, err)
	}

	loc := &contracts.Location{
		Place:     place,
		Latitude:  roundCoord(lat),
		Longitude: roundCoord(lon),
	}

	c.logger.WithFields(map[string]interface{}{
		"place":    place,
		"resolved": results[0].DisplayName,
		"lat":      loc.Latitude,
		"lon":      loc.Longitude,
	}).Info("Place resolved")
	return loc, nil
}

// roundCoord rounds to six decimal places, about 0.1m of precision
func roundCoord(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
