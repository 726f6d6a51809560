// internal/scorers/location/scorer.go
package location

import (
	"strings"

	"matching-engine/internal/geo"
	"matching-engine/internal/models"
)

// DefaultMaxDistanceKm applies when a job carries coordinates but no
// configured commute radius.
const DefaultMaxDistanceKm = 50.0

// timezoneGroups maps timezone identifiers to a shared group. Two
// timezones are compatible when they are equal or share a group.
var timezoneGroups = map[string]int{
	"UTC": 0, "GMT": 0,
	"EST": 1, "EDT": 1, "America/New_York": 1,
	"PST": 2, "PDT": 2, "America/Los_Angeles": 2,
	"CET": 3, "CEST": 3, "Europe/Berlin": 3,
	"JST": 4, "Asia/Tokyo": 4,
	"IST": 5, "Asia/Kolkata": 5,
}

// Output reports how well two locations fit together.
type Output struct {
	Score              float64  `json:"score"`
	Match              bool     `json:"match"`
	DistanceKm         *float64 `json:"distanceKm,omitempty"`
	TimezoneCompatible *bool    `json:"timezoneCompatible,omitempty"`
}

type Config struct {
	DefaultMaxDistanceKm float64
}

func DefaultConfig() *Config {
	return &Config{DefaultMaxDistanceKm: DefaultMaxDistanceKm}
}

// Scorer scores location fit. Stateless beyond its config.
type Scorer struct {
	config *Config
}

func NewScorer(config *Config) *Scorer {
	return &Scorer{config: config}
}

// Match applies the precedence rules: remote short-circuit, coordinate
// distance with linear decay, then case-insensitive city, region and
// country fallbacks. Timezone compatibility is computed independently and
// always reported.
func (s *Scorer) Match(candidate, job models.Location) *Output {
	tz := TimezoneCompatible(candidate.Timezone, job.Timezone)
	out := &Output{TimezoneCompatible: &tz}

	// Rule 1: remote on either side trumps geography.
	if candidate.Remote || job.Remote {
		out.Score = 1.0
		out.Match = true
		return out
	}

	// Rule 2: both sides carry coordinates.
	if candidate.Coordinates != nil && job.Coordinates != nil {
		distance := geo.HaversineKm(*candidate.Coordinates, *job.Coordinates)
		out.DistanceKm = &distance

		maxDist := job.MaxDistanceKm
		if maxDist <= 0 {
			maxDist = s.config.DefaultMaxDistanceKm
		}

		if distance <= maxDist {
			// Linear decay from 1.0 at distance 0 to 0.5 at the boundary.
			score := 1 - (distance/maxDist)*0.5
			if score < 0.5 {
				score = 0.5
			}
			out.Score = score
			out.Match = true
			return out
		}
		// Out of range: fall through to the name-based rules.
	}

	switch {
	case equalFold(candidate.City, job.City):
		out.Score = 1.0
		out.Match = true
	case equalFold(candidate.Region, job.Region):
		out.Score = 0.8
		out.Match = true
	case equalFold(candidate.Country, job.Country):
		out.Score = 0.6
		out.Match = true
	default:
		out.Score = 0.0
		out.Match = false
	}

	return out
}

// TimezoneCompatible reports whether two timezone identifiers are exactly
// equal or belong to the same predefined group. A missing timezone on
// either side counts as compatible.
func TimezoneCompatible(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	if a == b {
		return true
	}

	groupA, okA := timezoneGroups[a]
	groupB, okB := timezoneGroups[b]
	return okA && okB && groupA == groupB
}

func equalFold(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}
