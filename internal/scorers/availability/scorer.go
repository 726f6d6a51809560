// internal/scorers/availability/scorer.go

// Package availability scores how well two availability profiles line up:
// start-date proximity, working-hours compatibility and remote-preference
// compatibility. Factors where either side omits the field are skipped,
// not penalized.
package availability

import (
	"fmt"
	"math"
	"time"

	"matching-engine/internal/models"
)

// MatchThreshold is the minimum score that still counts as a match.
const MatchThreshold = 0.4

// Output reports availability fit with human-readable detail strings.
type Output struct {
	Score   float64  `json:"score"`
	Match   bool     `json:"match"`
	Details []string `json:"details"`
}

// Match scores two optional availability profiles. A missing profile on
// either side yields a neutral 0.5. Otherwise the score is the mean of
// the contributing factor scores, rounded to two decimals.
func Match(candidate, job *models.AvailabilityProfile) *Output {
	if candidate == nil || job == nil {
		return &Output{
			Score:   0.5,
			Match:   true,
			Details: []string{"availability not specified for one or both sides"},
		}
	}

	var total float64
	var factors int
	details := make([]string, 0, 3)

	if candidate.StartDate != nil && job.StartDate != nil {
		score, detail := startDateScore(*candidate.StartDate, *job.StartDate)
		total += score
		factors++
		details = append(details, detail)
	}

	if candidate.WorkingHours != "" && job.WorkingHours != "" {
		score, detail := workingHoursScore(candidate.WorkingHours, job.WorkingHours)
		total += score
		factors++
		details = append(details, detail)
	}

	if candidate.RemotePreference != "" && job.RemotePreference != "" {
		score, detail := remotePreferenceScore(candidate.RemotePreference, job.RemotePreference)
		total += score
		factors++
		details = append(details, detail)
	}

	score := 0.5
	if factors > 0 {
		score = round2(total / float64(factors))
	} else {
		details = append(details, "no overlapping availability fields")
	}

	return &Output{
		Score:   score,
		Match:   score >= MatchThreshold,
		Details: details,
	}
}

func startDateScore(candidate, job time.Time) (float64, string) {
	days := math.Abs(candidate.Sub(job).Hours()) / 24

	var score float64
	switch {
	case days <= 7:
		score = 1.0
	case days <= 30:
		score = 0.8
	case days <= 90:
		score = 0.5
	default:
		score = 0.2
	}

	return score, fmt.Sprintf("start dates %d days apart", int(days))
}

func workingHoursScore(candidate, job string) (float64, string) {
	switch {
	case candidate == job:
		return 1.0, "working hours match exactly"
	case candidate == models.WorkingHoursFlexible:
		return 0.9, "candidate has flexible working hours"
	case job == models.WorkingHoursFlexible:
		return 0.8, "job offers flexible working hours"
	default:
		return 0.3, fmt.Sprintf("working hours differ: %s vs %s", candidate, job)
	}
}

func remotePreferenceScore(candidate, job string) (float64, string) {
	switch {
	case candidate == job:
		return 1.0, "remote preferences match exactly"
	case candidate == models.RemotePrefHybrid || job == models.RemotePrefHybrid:
		return 0.8, "hybrid preference bridges the gap"
	default:
		return 0.2, fmt.Sprintf("remote preferences differ: %s vs %s", candidate, job)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
