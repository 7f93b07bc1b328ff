package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/mapview"
)

var london = domain.Coordinate{Latitude: 51.5034, Longitude: -0.1276}

func newLocationFixture() (*MockGeocoder, *MockWeatherFetcher, *LocationService) {
	geocoder := new(MockGeocoder)
	weather := new(MockWeatherFetcher)
	svc := NewLocationService(geocoder, weather, mapview.New(), zerolog.Nop())
	return geocoder, weather, svc
}

func TestLocationService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("both lookups succeed", func(t *testing.T) {
		geocoder, weather, svc := newLocationFixture()

		geocoder.On("Reverse", mock.Anything, london).Return(&domain.ResolvedLocation{
			DisplayAddress: "10 Downing Street",
			City:           "London",
			Country:        "United Kingdom",
			Timezone:       "Europe/London",
		}, nil)
		weather.On("Current", mock.Anything, london).Return(&domain.WeatherReading{
			TemperatureC: 18.5,
			HumidityPct:  60,
		}, nil)

		report := svc.Resolve(ctx, london, "< 20 meters")

		assert.Equal(t, london, report.Coordinate)
		assert.Equal(t, "< 20 meters", report.Accuracy)
		require.NotNil(t, report.Location)
		require.NotNil(t, report.Weather)
		require.NotNil(t, report.Map.Marker)
		assert.Equal(t, "London, United Kingdom", report.Map.Marker.Label)
		assert.Equal(t, london, report.Map.Center)
	})

	t.Run("reverse failure is swallowed, weather still reported", func(t *testing.T) {
		geocoder, weather, svc := newLocationFixture()

		geocoder.On("Reverse", mock.Anything, london).Return(nil, errors.New("network down"))
		weather.On("Current", mock.Anything, london).Return(&domain.WeatherReading{TemperatureC: 18.5}, nil)

		report := svc.Resolve(ctx, london, "Unknown")

		assert.Nil(t, report.Location)
		require.NotNil(t, report.Weather)
		require.NotNil(t, report.Map.Marker)
		assert.Equal(t, "Current Location", report.Map.Marker.Label)
	})

	t.Run("weather failure is swallowed, location still reported", func(t *testing.T) {
		geocoder, weather, svc := newLocationFixture()

		geocoder.On("Reverse", mock.Anything, london).Return(&domain.ResolvedLocation{
			City:    "London",
			Country: "United Kingdom",
		}, nil)
		weather.On("Current", mock.Anything, london).Return(nil, errors.New("api key rejected"))

		report := svc.Resolve(ctx, london, "Unknown")

		require.NotNil(t, report.Location)
		assert.Nil(t, report.Weather)
	})

	t.Run("later resolve moves the single marker", func(t *testing.T) {
		geocoder, weather, svc := newLocationFixture()
		nairobi := domain.Coordinate{Latitude: -1.29, Longitude: 36.82}

		geocoder.On("Reverse", mock.Anything, mock.Anything).Return(nil, errors.New("down"))
		weather.On("Current", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

		svc.Resolve(ctx, london, "Unknown")
		report := svc.Resolve(ctx, nairobi, "Unknown")

		require.NotNil(t, report.Map.Marker)
		assert.Equal(t, nairobi, report.Map.Marker.Coordinate)
	})
}

func TestLocationService_SearchAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		geocoder, _, svc := newLocationFixture()

		_, err := svc.SearchAddress(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyQuery)

		geocoder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
	})

	t.Run("no results", func(t *testing.T) {
		geocoder, _, svc := newLocationFixture()

		geocoder.On("Forward", mock.Anything, "nowhere at all").Return(nil, nil)

		_, err := svc.SearchAddress(ctx, "nowhere at all")
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("forward failure is reported as not found", func(t *testing.T) {
		geocoder, _, svc := newLocationFixture()

		geocoder.On("Forward", mock.Anything, "London").Return(nil, errors.New("timeout"))

		_, err := svc.SearchAddress(ctx, "London")
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("first result resolved as manual entry", func(t *testing.T) {
		geocoder, weather, svc := newLocationFixture()

		geocoder.On("Forward", mock.Anything, "London").Return(&london, nil)
		geocoder.On("Reverse", mock.Anything, london).Return(&domain.ResolvedLocation{
			City:    "London",
			Country: "United Kingdom",
		}, nil)
		weather.On("Current", mock.Anything, london).Return(&domain.WeatherReading{TemperatureC: 18.5}, nil)

		report, err := svc.SearchAddress(ctx, " London ")
		require.NoError(t, err)
		assert.Equal(t, "Manual entry", report.Accuracy)
		assert.Equal(t, london, report.Coordinate)
	})
}
