// Package geocode talks to a Nominatim-compatible geocoding provider.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/urbangrow/urbangrow/internal/config"
	"github.com/urbangrow/urbangrow/internal/domain"
)

const (
	unknownAddress = "Unknown Address"
	unknownCity    = "Unknown City"
	unknownCountry = "Unknown Country"
)

// Client calls the geocoding provider's reverse and search endpoints.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a new geocoding client
func NewClient(cfg config.GeocoderConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		// No request timeout: a slow answer still beats an empty one, and
		// callers decide what to do with failures.
		client: &http.Client{},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Reverse resolves a coordinate to a human-readable location. Missing fields
// fall back to "Unknown ..." placeholders; the city is taken from the first
// of city, town and village that is set. The timezone comes from the runtime
// environment, not from the provider.
func (c *Client) Reverse(ctx context.Context, coord domain.Coordinate) (*domain.ResolvedLocation, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f", c.baseURL, coord.Latitude, coord.Longitude)

	var payload reverseResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	address := payload.DisplayName
	if address == "" {
		address = unknownAddress
	}

	city := payload.Address.City
	if city == "" {
		city = payload.Address.Town
	}
	if city == "" {
		city = payload.Address.Village
	}
	if city == "" {
		city = unknownCity
	}

	country := payload.Address.Country
	if country == "" {
		country = unknownCountry
	}

	return &domain.ResolvedLocation{
		DisplayAddress: address,
		City:           city,
		Country:        country,
		Timezone:       time.Local.String(),
	}, nil
}

// Forward resolves a free-text query to the highest-ranked coordinate.
// It returns nil with no error when the provider has no results.
func (c *Client) Forward(ctx context.Context, query string) (*domain.Coordinate, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", c.baseURL, url.QueryEscape(query))

	var results []searchResult
	if err := c.get(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed longitude %q: %w", results[0].Lon, err)
	}

	return &domain.Coordinate{Latitude: lat, Longitude: lon}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
