package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbangrow/urbangrow/internal/config"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/weather"
)

func newTestClient(t *testing.T, fn http.HandlerFunc) *weather.Client {
	t.Helper()
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)
	return weather.NewClient(config.WeatherConfig{BaseURL: srv.URL, APIKey: "test-key"})
}

func TestCurrent_FullResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(`{
			"main": {"temp": 21.46, "humidity": 64},
			"wind": {"speed": 4.2},
			"rain": {"1h": 0.8}
		}`))
	})

	reading, err := client.Current(context.Background(), domain.Coordinate{Latitude: 51.5, Longitude: -0.12})
	require.NoError(t, err)
	assert.Equal(t, 21.5, reading.TemperatureC) // rounded to one decimal
	assert.Equal(t, 64, reading.HumidityPct)
	assert.Equal(t, 4.2, reading.WindSpeed)
	assert.Equal(t, 0.8, reading.PrecipitationMm)
}

func TestCurrent_NoRainObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 18.0, "humidity": 50}, "wind": {"speed": 2.0}}`))
	})

	reading, err := client.Current(context.Background(), domain.Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, reading.PrecipitationMm)
}

func TestCurrent_RainWithoutOneHourBucket(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 18.0, "humidity": 50}, "rain": {"3h": 2.5}}`))
	})

	reading, err := client.Current(context.Background(), domain.Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, reading.PrecipitationMm)
}

func TestCurrent_MissingMainSectionIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	})

	_, err := client.Current(context.Background(), domain.Coordinate{})
	assert.Error(t, err)
}

func TestCurrent_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.Current(context.Background(), domain.Coordinate{})
	assert.Error(t, err)
}
