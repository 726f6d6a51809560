// internal/models/job.go
package models

// Job is the minimal job record the matching engine consumes.
type Job struct {
	ID                 string               `json:"id"`
	Title              string               `json:"title,omitempty"`
	RequiredSkills     []string             `json:"requiredSkills"`
	Location           Location             `json:"location"`
	ExperienceRequired Range                `json:"experienceRequired"`
	SalaryRange        Range                `json:"salaryRange"`
	Availability       *AvailabilityProfile `json:"availability,omitempty"`
}
