package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/mapview"
)

var (
	// ErrEmptyQuery is returned when a manual location query is blank.
	ErrEmptyQuery = errors.New("please enter a location")
	// ErrLocationNotFound is returned when forward geocoding yields nothing.
	ErrLocationNotFound = errors.New("location not found")
)

// Geocoder translates between coordinates and human-readable places.
type Geocoder interface {
	Reverse(ctx context.Context, coord domain.Coordinate) (*domain.ResolvedLocation, error)
	Forward(ctx context.Context, query string) (*domain.Coordinate, error)
}

// WeatherFetcher fetches the current reading for a coordinate.
type WeatherFetcher interface {
	Current(ctx context.Context, coord domain.Coordinate) (*domain.WeatherReading, error)
}

// LocationReport is everything a location lookup produced. Location and
// Weather are nil when the corresponding upstream call failed; those
// failures are logged and otherwise swallowed.
type LocationReport struct {
	Coordinate domain.Coordinate        `json:"coordinate"`
	Accuracy   string                   `json:"accuracy"`
	Location   *domain.ResolvedLocation `json:"location,omitempty"`
	Weather    *domain.WeatherReading   `json:"weather,omitempty"`
	Map        mapview.Snapshot         `json:"map"`
}

// LocationService resolves coordinates and address queries into reports
// and keeps the map view current.
type LocationService struct {
	geocoder Geocoder
	weather  WeatherFetcher
	view     *mapview.View
	logger   zerolog.Logger
}

// NewLocationService creates a new location service
func NewLocationService(geocoder Geocoder, weather WeatherFetcher, view *mapview.View, logger zerolog.Logger) *LocationService {
	return &LocationService{
		geocoder: geocoder,
		weather:  weather,
		view:     view,
		logger:   logger,
	}
}

// Resolve runs reverse geocoding and the weather fetch concurrently and
// independently; neither failure affects the other, and there is no retry.
func (s *LocationService) Resolve(ctx context.Context, coord domain.Coordinate, accuracy string) *LocationReport {
	logger := s.logger.With().Str("lookup_id", uuid.NewString()).
		Float64("lat", coord.Latitude).
		Float64("lon", coord.Longitude).
		Logger()

	var (
		location *domain.ResolvedLocation
		weather  *domain.WeatherReading
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		loc, err := s.geocoder.Reverse(ctx, coord)
		if err != nil {
			logger.Error().Err(err).Msg("reverse geocoding failed")
			return
		}
		location = loc
	}()
	go func() {
		defer wg.Done()
		reading, err := s.weather.Current(ctx, coord)
		if err != nil {
			logger.Error().Err(err).Msg("weather fetch failed")
			return
		}
		weather = reading
	}()
	wg.Wait()

	label := "Current Location"
	if location != nil {
		label = location.City + ", " + location.Country
	}
	s.view.Show(coord, label)

	return &LocationReport{
		Coordinate: coord,
		Accuracy:   accuracy,
		Location:   location,
		Weather:    weather,
		Map:        s.view.Snapshot(),
	}
}

// SearchAddress forward-geocodes a manual query and resolves the first
// (highest-ranked) result.
func (s *LocationService) SearchAddress(ctx context.Context, query string) (*LocationReport, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	coord, err := s.geocoder.Forward(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("forward geocoding failed")
		return nil, ErrLocationNotFound
	}
	if coord == nil {
		return nil, ErrLocationNotFound
	}

	return s.Resolve(ctx, *coord, "Manual entry"), nil
}

// MapSnapshot returns the current map view state
func (s *LocationService) MapSnapshot() mapview.Snapshot {
	return s.view.Snapshot()
}
