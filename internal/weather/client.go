// Package weather fetches current conditions from an OpenWeatherMap-style API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/urbangrow/urbangrow/internal/config"
	"github.com/urbangrow/urbangrow/internal/domain"
)

// Client calls the weather provider's current-conditions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new weather client
func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{},
	}
}

type currentResponse struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	// Rain carries accumulation buckets keyed "1h"/"3h". Only the 1-hour
	// rain figure is read; snow is out of scope.
	Rain map[string]float64 `json:"rain"`
}

// Current fetches the current reading for a coordinate in metric units.
// A payload without a main section (the provider's error shape) is an error.
func (c *Client) Current(ctx context.Context, coord domain.Coordinate) (*domain.WeatherReading, error) {
	endpoint := fmt.Sprintf("%s/weather?lat=%f&lon=%f&appid=%s&units=metric",
		c.baseURL, coord.Latitude, coord.Longitude, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Main == nil {
		return nil, fmt.Errorf("weather api error: status %d", resp.StatusCode)
	}

	var precipitation float64
	if payload.Rain != nil {
		precipitation = payload.Rain["1h"]
	}

	return &domain.WeatherReading{
		TemperatureC:    math.Round(payload.Main.Temp*10) / 10,
		HumidityPct:     payload.Main.Humidity,
		WindSpeed:       payload.Wind.Speed,
		PrecipitationMm: precipitation,
	}, nil
}
