// Package recommend maps garden form inputs to plant suggestions via a
// fixed rule table.
package recommend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urbangrow/urbangrow/internal/domain"
)

// ErrMissingFields is returned when a mandatory form field is empty.
var ErrMissingFields = errors.New("please fill in all required fields (space type, dimensions, sunlight)")

var (
	highSunPlants   = []string{"Tomatoes", "Chili Peppers", "Cucumbers"}
	mediumSunPlants = []string{"Carrots", "Lettuce", "Herbs"}
	lowSunPlants    = []string{"Spinach", "Broccoli", "Coriander"}
)

// Recommend returns the plant list for the given inputs. Sunlight selects
// exactly one base set; sandy or clay soil appends a bonus plant after it.
func Recommend(req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	if strings.TrimSpace(req.SpaceType) == "" ||
		strings.TrimSpace(req.Dimensions) == "" ||
		strings.TrimSpace(req.Sunlight) == "" {
		return nil, ErrMissingFields
	}

	var plants []string
	switch req.Sunlight {
	case "high":
		plants = append(plants, highSunPlants...)
	case "medium":
		plants = append(plants, mediumSunPlants...)
	default:
		plants = append(plants, lowSunPlants...)
	}

	switch req.SoilType {
	case "sandy":
		plants = append(plants, "Groundnuts")
	case "clay":
		plants = append(plants, "Sweet Potatoes")
	}

	return &domain.RecommendationResult{
		Plants: plants,
		Tip:    fmt.Sprintf("Based on your %s experience, start with easier plants first.", req.Experience),
	}, nil
}
