package domain

// Coordinate is a latitude/longitude pair in floating-point degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ResolvedLocation is the human-readable form of a coordinate.
type ResolvedLocation struct {
	DisplayAddress string `json:"display_address"`
	City           string `json:"city"`
	Country        string `json:"country"`
	Timezone       string `json:"timezone"`
}
