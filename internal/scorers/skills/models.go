// internal/scorers/skills/models.go
package skills

import "matching-engine/internal/models"

// Output is the result of matching candidate skills against job-required
// skills: the aggregate score and at most one best match per job skill.
type Output struct {
	Score         float64             `json:"score"`
	MatchedSkills []models.SkillMatch `json:"matchedSkills"`
}
