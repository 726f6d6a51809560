// internal/filter/filter.go

// Package filter narrows candidate pools by geographic and timezone
// constraints before scoring.
package filter

import (
	"strings"

	"matching-engine/internal/common/logger"
	"matching-engine/internal/geo"
	"matching-engine/internal/models"
	"matching-engine/internal/scorers/location"
)

// Filter applies a Spec to candidate sets. Checks run in a fixed order
// (country, region, city, distance, timezone) and stop at the first failure.
type Filter struct {
	spec   Spec
	logger logger.Logger
}

func New(spec Spec, log logger.Logger) *Filter {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Filter{spec: spec, logger: log}
}

// Apply partitions candidates into those passing every configured check and
// those excluded, tagging each exclusion with the check that rejected it.
func (f *Filter) Apply(candidates []models.Candidate) *Result {
	result := &Result{
		Filtered:     make([]models.Candidate, 0, len(candidates)),
		Excluded:     make([]Excluded, 0),
		ReasonCounts: make(map[Reason]int),
	}

	for _, candidate := range candidates {
		if reason, ok := f.exclude(candidate.Location); ok {
			result.Excluded = append(result.Excluded, Excluded{
				Candidate: candidate,
				Reasons:   []Reason{reason},
			})
			result.ReasonCounts[reason]++
			continue
		}
		result.Filtered = append(result.Filtered, candidate)
	}

	f.logger.Debug("Region filter applied", map[string]interface{}{
		"total":    len(candidates),
		"passed":   len(result.Filtered),
		"excluded": len(result.Excluded),
	})
	return result
}

// exclude returns the first failing check for loc, if any.
func (f *Filter) exclude(loc models.Location) (Reason, bool) {
	if len(f.spec.Countries) > 0 && !containsFold(f.spec.Countries, loc.Country) {
		return ReasonCountryMismatch, true
	}
	if len(f.spec.Regions) > 0 && !containsFold(f.spec.Regions, loc.Region) {
		return ReasonRegionMismatch, true
	}
	if len(f.spec.Cities) > 0 && !containsFold(f.spec.Cities, loc.City) {
		return ReasonCityMismatch, true
	}
	if f.spec.MaxDistanceKm != nil && f.spec.CenterPoint != nil {
		if loc.Coordinates == nil {
			return ReasonNoCoordinates, true
		}
		if geo.HaversineKm(*loc.Coordinates, *f.spec.CenterPoint) > *f.spec.MaxDistanceKm {
			return ReasonDistanceExceeded, true
		}
	}
	if len(f.spec.Timezones) > 0 && !timezoneAllowed(f.spec.Timezones, loc.Timezone) {
		return ReasonTimezoneMismatch, true
	}
	return "", false
}

// timezoneAllowed accepts a timezone that matches any allowed entry directly
// or through a shared alias group (UTC and GMT, EST and America/New_York).
func timezoneAllowed(allowed []string, tz string) bool {
	if tz == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, tz) || location.TimezoneCompatible(a, tz) {
			return true
		}
	}
	return false
}

func containsFold(list []string, value string) bool {
	if value == "" {
		return false
	}
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
