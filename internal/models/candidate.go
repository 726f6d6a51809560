// internal/models/candidate.go
package models

// Candidate is the minimal candidate record the matching engine consumes.
type Candidate struct {
	ID                string               `json:"id"`
	Name              string               `json:"name,omitempty"`
	Skills            []string             `json:"skills"`
	Location          Location             `json:"location"`
	YearsExperience   float64              `json:"yearsExperience"`
	SalaryExpectation Range                `json:"salaryExpectation"`
	Availability      *AvailabilityProfile `json:"availability,omitempty"`
}
