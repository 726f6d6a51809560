// internal/models/match.go
package models

import (
	"math"
	"time"
)

// Range is a numeric interval with independently optional bounds, used for
// experience years and salary. A nil bound means unbounded on that side.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// EffectiveMin returns the lower bound, defaulting to 0.
func (r Range) EffectiveMin() float64 {
	if r.Min == nil {
		return 0
	}
	return *r.Min
}

// EffectiveMax returns the upper bound, defaulting to +Inf.
func (r Range) EffectiveMax() float64 {
	if r.Max == nil {
		return math.Inf(1)
	}
	return *r.Max
}

// IsUnbounded reports whether neither bound is set.
func (r Range) IsUnbounded() bool {
	return r.Min == nil && r.Max == nil
}

// Width returns the size of the interval using effective bounds.
// Unbounded on either side yields +Inf.
func (r Range) Width() float64 {
	return r.EffectiveMax() - r.EffectiveMin()
}

// Working-hours preference values.
const (
	WorkingHoursFlexible = "flexible"
	WorkingHoursFixed    = "fixed"
	WorkingHoursShift    = "shift"
)

// Remote-preference values.
const (
	RemotePrefRemote = "remote"
	RemotePrefHybrid = "hybrid"
	RemotePrefOnsite = "onsite"
)

// AvailabilityProfile captures when and how someone can start working.
// All fields are optional; factors where either side omits the field are
// skipped by the availability scorer.
type AvailabilityProfile struct {
	StartDate        *time.Time `json:"startDate,omitempty"`
	WorkingHours     string     `json:"workingHours,omitempty"`
	RemotePreference string     `json:"remotePreference,omitempty"`
}

// MatchWeights controls the contribution of each dimension to the total
// score. Weights should sum to 1 by convention; the engine does not enforce
// it, the total is a direct weighted sum.
type MatchWeights struct {
	Skills     float64 `json:"skills"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
	Salary     float64 `json:"salary"`
}

// DefaultMatchWeights returns the standard weighting: skills dominate.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Skills:     0.5,
		Location:   0.2,
		Experience: 0.2,
		Salary:     0.1,
	}
}

// SkillMatch is one job-required skill paired with the similarity of the
// best candidate skill that cleared the threshold.
type SkillMatch struct {
	Skill string  `json:"skill"`
	Score float64 `json:"score"`
}

// MatchResult is the outcome of scoring one candidate against one job.
// Built fresh per call and never mutated afterwards.
type MatchResult struct {
	CandidateID     string       `json:"candidateId"`
	JobID           string       `json:"jobId"`
	TotalScore      float64      `json:"totalScore"`
	SkillScore      float64      `json:"skillScore"`
	LocationScore   float64      `json:"locationScore"`
	ExperienceScore float64      `json:"experienceScore"`
	SalaryScore     float64      `json:"salaryScore"`
	MatchedSkills   []SkillMatch `json:"matchedSkills"`
	LocationMatch   bool         `json:"locationMatch"`
	ExperienceMatch bool         `json:"experienceMatch"`
	SalaryMatch     bool         `json:"salaryMatch"`
}
