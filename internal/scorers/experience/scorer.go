// internal/scorers/experience/scorer.go

// Package experience scores candidate years of experience against a job's
// required range, granting partial credit near the boundaries.
package experience

import "matching-engine/internal/models"

// Output reports experience fit.
type Output struct {
	Score float64 `json:"score"`
	Match bool    `json:"match"`
}

// Match scores years against the required range. Inside the range scores
// 1.0. Below the floor the score decays with the relative gap and the
// match flag survives a gap of at most one year. Above the ceiling the
// decay is gentler and the match flag survives an excess of at most two
// years.
func Match(years float64, required models.Range) *Output {
	if years < 0 {
		years = 0
	}

	if required.IsUnbounded() {
		return &Output{Score: 1.0, Match: true}
	}

	min := required.EffectiveMin()
	max := required.EffectiveMax()

	if years >= min && years <= max {
		return &Output{Score: 1.0, Match: true}
	}

	if years < min {
		// min > 0 here: years >= 0 and years < min.
		gap := min - years
		score := 1 - (gap/min)*0.5
		if score < 0 {
			score = 0
		}
		return &Output{Score: score, Match: gap <= 1}
	}

	// years > max. A zero ceiling would divide by zero below.
	if max == 0 {
		return &Output{Score: 0, Match: false}
	}

	excess := years - max
	score := 1 - (excess/max)*0.3
	if score < 0 {
		score = 0
	}
	return &Output{Score: score, Match: excess <= 2}
}
