package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/urbangrow/urbangrow/internal/api/response"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/service"
)

// WeatherHandler exposes the current-conditions reading directly
type WeatherHandler struct {
	weather service.WeatherFetcher
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weather service.WeatherFetcher) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

// Current handles GET /api/v1/weather/current?lat=&lon=
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		response.BadRequest(w, "lat and lon query parameters are required")
		return
	}

	coord := domain.Coordinate{Latitude: lat, Longitude: lon}
	if err := validate.Struct(coord); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	reading, err := h.weather.Current(r.Context(), coord)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("weather fetch failed")
		response.Message(w, http.StatusBadGateway, "weather data unavailable")
		return
	}

	response.OK(w, reading)
}
