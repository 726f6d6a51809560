// internal/scorers/salary/scorer.go

// Package salary scores the overlap between a candidate's expected salary
// range and a job's offered range.
package salary

import (
	"math"

	"matching-engine/internal/models"
)

// Output reports salary fit.
type Output struct {
	Score float64 `json:"score"`
	Match bool    `json:"match"`
}

// Match computes the overlap between the expectation and offer intervals.
// A side with no bounds expresses no constraint and scores 1.0. With an
// overlap, the score is the overlap width divided by the narrower of the
// two ranges, clamped to 1.0; an unbounded narrower side contributes a
// ratio of 1.0 instead of dividing by infinity. Disjoint ranges score 0.
func Match(expectation, offer models.Range) *Output {
	if expectation.IsUnbounded() || offer.IsUnbounded() {
		return &Output{Score: 1.0, Match: true}
	}

	overlapMin := math.Max(expectation.EffectiveMin(), offer.EffectiveMin())
	overlapMax := math.Min(expectation.EffectiveMax(), offer.EffectiveMax())

	if overlapMin > overlapMax {
		return &Output{Score: 0, Match: false}
	}

	narrower := math.Min(expectation.Width(), offer.Width())
	if math.IsInf(narrower, 1) || narrower <= 0 {
		// Unbounded or degenerate point ranges: any overlap is a full fit.
		return &Output{Score: 1.0, Match: true}
	}

	score := (overlapMax - overlapMin) / narrower
	if score > 1 {
		score = 1
	}

	return &Output{Score: score, Match: true}
}
