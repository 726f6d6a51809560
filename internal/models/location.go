// internal/models/location.go
package models

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location describes where a candidate lives or a job is based. Every field
// is optional; scorers fall back through coordinates, city, region and
// country in that order.
type Location struct {
	City          string    `json:"city,omitempty"`
	Region        string    `json:"region,omitempty"`
	Country       string    `json:"country,omitempty"`
	Remote        bool      `json:"remote,omitempty"`
	Coordinates   *GeoPoint `json:"coordinates,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	MaxDistanceKm float64   `json:"maxDistanceKm,omitempty"`
}
