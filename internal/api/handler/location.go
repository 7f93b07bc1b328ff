package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/urbangrow/urbangrow/internal/api/response"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/service"
)

// LocationHandler handles location resolution endpoints
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// ResolveRequest carries a client-acquired coordinate. Accuracy is the GPS
// accuracy radius in meters when the client has one.
type ResolveRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// SearchRequest carries a manual free-text location query.
type SearchRequest struct {
	Query string `json:"query"`
}

// Resolve handles POST /api/v1/location/resolve
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var input ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	accuracy := "Unknown"
	if input.Accuracy > 0 {
		accuracy = fmt.Sprintf("< %d meters", int(math.Round(input.Accuracy)))
	}

	coord := domain.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	report := h.locationService.Resolve(r.Context(), coord, accuracy)

	response.OK(w, report)
}

// Search handles POST /api/v1/location/search
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	var input SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	report, err := h.locationService.SearchAddress(r.Context(), input.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery):
			response.BadRequest(w, "Please enter a location")
		case errors.Is(err, service.ErrLocationNotFound):
			response.NotFound(w, "Location not found. Try again.")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, report)
}

// Map handles GET /api/v1/map
func (h *LocationHandler) Map(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.locationService.MapSnapshot())
}
