package domain

// WeatherReading is a single current-conditions sample for a coordinate.
// Each fetch overwrites the previous reading; no history is kept.
type WeatherReading struct {
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPct     int     `json:"humidity_pct"`
	WindSpeed       float64 `json:"wind_speed"`
	PrecipitationMm float64 `json:"precipitation_mm"`
}
