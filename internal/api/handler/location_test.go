package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbangrow/urbangrow/internal/api/handler"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/mapview"
	"github.com/urbangrow/urbangrow/internal/service"
)

type stubGeocoder struct {
	forward *domain.Coordinate
	reverse *domain.ResolvedLocation
}

func (s *stubGeocoder) Reverse(context.Context, domain.Coordinate) (*domain.ResolvedLocation, error) {
	if s.reverse == nil {
		return nil, errors.New("reverse unavailable")
	}
	return s.reverse, nil
}

func (s *stubGeocoder) Forward(context.Context, string) (*domain.Coordinate, error) {
	return s.forward, nil
}

type stubWeather struct {
	reading *domain.WeatherReading
}

func (s *stubWeather) Current(context.Context, domain.Coordinate) (*domain.WeatherReading, error) {
	if s.reading == nil {
		return nil, errors.New("weather unavailable")
	}
	return s.reading, nil
}

func newLocationHandler(geocoder *stubGeocoder, weather *stubWeather) *handler.LocationHandler {
	svc := service.NewLocationService(geocoder, weather, mapview.New(), zerolog.Nop())
	return handler.NewLocationHandler(svc)
}

func TestLocationHandler_Resolve(t *testing.T) {
	t.Run("returns the report with an accuracy label", func(t *testing.T) {
		h := newLocationHandler(
			&stubGeocoder{reverse: &domain.ResolvedLocation{City: "London", Country: "United Kingdom"}},
			&stubWeather{reading: &domain.WeatherReading{TemperatureC: 18.5}},
		)

		rec := httptest.NewRecorder()
		h.Resolve(rec, makeJSONRequest(t, http.MethodPost, "/api/v1/location/resolve", map[string]any{
			"latitude":  51.5034,
			"longitude": -0.1276,
			"accuracy":  19.6,
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "< 20 meters", body["accuracy"])
		assert.NotNil(t, body["location"])
		assert.NotNil(t, body["weather"])
	})

	t.Run("upstream failures still produce a report", func(t *testing.T) {
		h := newLocationHandler(&stubGeocoder{}, &stubWeather{})

		rec := httptest.NewRecorder()
		h.Resolve(rec, makeJSONRequest(t, http.MethodPost, "/api/v1/location/resolve", map[string]any{
			"latitude":  51.5034,
			"longitude": -0.1276,
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.NotContains(t, body, "location")
		assert.NotContains(t, body, "weather")
		assert.Equal(t, "Unknown", body["accuracy"])
	})

	t.Run("out-of-range latitude fails validation", func(t *testing.T) {
		h := newLocationHandler(&stubGeocoder{}, &stubWeather{})

		rec := httptest.NewRecorder()
		h.Resolve(rec, makeJSONRequest(t, http.MethodPost, "/api/v1/location/resolve", map[string]any{
			"latitude":  95.0,
			"longitude": 0.0,
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLocationHandler_Search(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		h := newLocationHandler(&stubGeocoder{}, &stubWeather{})

		rec := httptest.NewRecorder()
		h.Search(rec, makeJSONRequest(t, http.MethodPost, "/api/v1/location/search", map[string]string{
			"query": "  ",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please enter a location", decodeBody(t, rec)["message"])
	})

	t.Run("no results", func(t *testing.T) {
		h := newLocationHandler(&stubGeocoder{}, &stubWeather{})

		rec := httptest.NewRecorder()
		h.Search(rec, makeJSONRequest(t, http.MethodPost, "/api/v1/location/search", map[string]string{
			"query": "nowhere at all",
		}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("match resolves as manual entry", func(t *testing.T) {
		coord := domain.Coordinate{Latitude: -1.29, Longitude: 36.82}
		h := newLocationHandler(
			&stubGeocoder{forward: &coord, reverse: &domain.ResolvedLocation{City: "Nairobi", Country: "Kenya"}},
			&stubWeather{reading: &domain.WeatherReading{TemperatureC: 24.1}},
		)

		rec := httptest.NewRecorder()
		h.Search(rec, makeJSONRequest(t, http.MethodPost, "/api/v1/location/search", map[string]string{
			"query": "Nairobi",
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Manual entry", decodeBody(t, rec)["accuracy"])
	})
}
