// Package geo provides the OpenCage-backed implementation of the Geocoder
// port. Quote pricing degrades gracefully without coordinates, so the client
// reports provider misses and rate limits as not-found rather than errors.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
)

const defaultBaseURL = "https://api.opencagedata.com"

// OpenCageClient resolves place names through the OpenCage forward geocoding
// API (/geocode/v1/json).
type OpenCageClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenCageClient creates a geocoding client for the given API key.
func NewOpenCageClient(apiKey string, logger *slog.Logger) *OpenCageClient {
	return &OpenCageClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// NewOpenCageClientWithBaseURL creates a client against a custom endpoint.
func NewOpenCageClientWithBaseURL(baseURL string, apiKey string, logger *slog.Logger) *OpenCageClient {
	client := NewOpenCageClient(apiKey, logger)
	client.baseURL = baseURL
	return client
}

type geocodeResponse struct {
	TotalResults int `json:"total_results"`
	Results      []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve looks up the coordinates for a place name. A provider response
// without results, or a non-200 status such as a rate limit, yields
// found=false; only transport failures are returned as errors.
func (c *OpenCageClient) Resolve(ctx context.Context, place string) (kernel.GeoPoint, bool, error) {
	endpoint := fmt.Sprintf("%s/geocode/v1/json?q=%s&key=%s",
		c.baseURL, url.QueryEscape(place), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, false, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, false, fmt.Errorf("failed to reach geocoding provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "geocoding provider returned non-200 status",
			"status", resp.StatusCode, "place", place)
		return kernel.GeoPoint{}, false, nil
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.GeoPoint{}, false, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if body.TotalResults == 0 || len(body.Results) == 0 {
		return kernel.GeoPoint{}, false, nil
	}

	point, err := kernel.NewGeoPoint(body.Results[0].Geometry.Lat, body.Results[0].Geometry.Lng)
	if err != nil {
		return kernel.GeoPoint{}, false, fmt.Errorf("geocoding provider returned invalid coordinates: %w", err)
	}

	return point, true, nil
}
