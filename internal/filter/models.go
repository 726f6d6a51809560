// internal/filter/models.go
package filter

import "matching-engine/internal/models"

// Reason tags why a candidate was excluded by the region filter.
type Reason string

const (
	ReasonCountryMismatch  Reason = "country_mismatch"
	ReasonRegionMismatch   Reason = "region_mismatch"
	ReasonCityMismatch     Reason = "city_mismatch"
	ReasonDistanceExceeded Reason = "distance_exceeded"
	ReasonNoCoordinates    Reason = "no_coordinates"
	ReasonTimezoneMismatch Reason = "timezone_mismatch"
)

// Spec describes a region filter. Empty lists and nil fields disable the
// corresponding check.
type Spec struct {
	Countries     []string         `json:"countries,omitempty"`
	Regions       []string         `json:"regions,omitempty"`
	Cities        []string         `json:"cities,omitempty"`
	MaxDistanceKm *float64         `json:"maxDistanceKm,omitempty"`
	CenterPoint   *models.GeoPoint `json:"centerPoint,omitempty"`
	Timezones     []string         `json:"timezones,omitempty"`
}

// Excluded pairs a rejected candidate with its exclusion reasons.
type Excluded struct {
	Candidate models.Candidate `json:"candidate"`
	Reasons   []Reason         `json:"reasons"`
}

// Result partitions a candidate set into passing and excluded candidates,
// with aggregate counts per exclusion reason.
type Result struct {
	Filtered     []models.Candidate `json:"filtered"`
	Excluded     []Excluded         `json:"excluded"`
	ReasonCounts map[Reason]int     `json:"reasonCounts"`
}
