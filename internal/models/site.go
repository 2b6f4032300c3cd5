package models

// Site represents a single SQM measurement location. Sites are reference
// data: created at load time from the coordinates dataset, never mutated.
type Site struct {
	Name      string  `json:"site_name" db:"site_name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Elevation float64 `json:"elevation_m,omitempty" db:"elevation_m"`
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
