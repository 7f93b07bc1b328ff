package domain

// RecommendationRequest carries the garden form fields. Space type,
// dimensions and sunlight are mandatory; soil and experience are optional.
type RecommendationRequest struct {
	SpaceType  string `json:"space_type"`
	Dimensions string `json:"dimensions"`
	Sunlight   string `json:"sunlight"`
	SoilType   string `json:"soil_type"`
	Experience string `json:"experience"`
}

// RecommendationResult is the ordered plant list plus an experience tip.
type RecommendationResult struct {
	Plants []string `json:"plants"`
	Tip    string   `json:"tip"`
}
