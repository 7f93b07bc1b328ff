package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/urbangrow/urbangrow/internal/api/response"
	"github.com/urbangrow/urbangrow/internal/domain"
	"github.com/urbangrow/urbangrow/internal/recommend"
)

// RecommendationHandler serves plant recommendations
type RecommendationHandler struct{}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler() *RecommendationHandler {
	return &RecommendationHandler{}
}

// Recommend handles POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input domain.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	result, err := recommend.Recommend(input)
	if err != nil {
		if errors.Is(err, recommend.ErrMissingFields) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
