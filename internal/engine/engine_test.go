// internal/engine/engine_test.go
package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/models"
	"matching-engine/internal/scorers/location"
	"matching-engine/internal/scorers/skills"
)

// fakeStore serves records from in-memory maps.
type fakeStore struct {
	candidates map[string]models.Candidate
	jobs       map[string]models.Job
}

func (f *fakeStore) GetCandidate(_ context.Context, candidateID string) (*models.Candidate, error) {
	candidate, ok := f.candidates[candidateID]
	if !ok {
		return nil, errors.NewCandidateNotFoundError(candidateID)
	}
	return &candidate, nil
}

func (f *fakeStore) GetJob(_ context.Context, jobID string) (*models.Job, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, errors.NewJobNotFoundError(jobID)
	}
	return &job, nil
}

// stubProvider returns fixed unit vectors per skill name, zero vectors for
// anything unknown.
type stubProvider struct {
	vectors map[string][]float64
}

func (p *stubProvider) Embed(_ context.Context, text string) ([]float64, error) {
	return p.vector(text), nil
}

func (p *stubProvider) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = p.vector(text)
	}
	return out, nil
}

func (p *stubProvider) vector(text string) []float64 {
	if v, ok := p.vectors[text]; ok {
		return v
	}
	return []float64{0, 0, 0}
}

func floatPtr(v float64) *float64 { return &v }

func newTestEngine(t *testing.T, recordStore *fakeStore) *Engine {
	t.Helper()
	provider := &stubProvider{vectors: map[string][]float64{
		"Go":     {1, 0, 0},
		"Python": {0, 1, 0},
		"React":  {0, 0, 1},
	}}
	skillScorer := skills.NewScorer(skills.DefaultConfig(), provider, nil, logger.NewTestLogger(t))
	return New(DefaultConfig(), recordStore, skillScorer, location.NewScorer(location.DefaultConfig()), logger.NewTestLogger(t))
}

func strongCandidate(id string) models.Candidate {
	return models.Candidate{
		ID:                id,
		Skills:            []string{"Go"},
		Location:          models.Location{City: "Berlin", Country: "Germany"},
		YearsExperience:   5,
		SalaryExpectation: models.Range{Min: floatPtr(60000), Max: floatPtr(80000)},
	}
}

func strongJob(id string) models.Job {
	return models.Job{
		ID:                 id,
		RequiredSkills:     []string{"Go"},
		Location:           models.Location{City: "Berlin", Country: "Germany"},
		ExperienceRequired: models.Range{Min: floatPtr(3), Max: floatPtr(7)},
		SalaryRange:        models.Range{Min: floatPtr(60000), Max: floatPtr(80000)},
	}
}

func TestMatchCandidateToJob_PerfectFit(t *testing.T) {
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": strongCandidate("c1")},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	result, err := e.MatchCandidateToJob(context.Background(), "c1", "j1", nil)
	require.NoError(t, err)

	assert.Equal(t, "c1", result.CandidateID)
	assert.Equal(t, "j1", result.JobID)
	assert.InDelta(t, 1.0, result.SkillScore, 1e-9)
	assert.InDelta(t, 1.0, result.LocationScore, 1e-9)
	assert.InDelta(t, 1.0, result.ExperienceScore, 1e-9)
	assert.InDelta(t, 1.0, result.SalaryScore, 1e-9)
	assert.InDelta(t, 1.0, result.TotalScore, 1e-9)
	assert.True(t, result.LocationMatch)
	assert.True(t, result.ExperienceMatch)
	assert.True(t, result.SalaryMatch)
	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, "Go", result.MatchedSkills[0].Skill)
}

func TestMatchCandidateToJob_WeightedTotal(t *testing.T) {
	candidate := strongCandidate("c1")
	candidate.Skills = []string{"Python"} // no overlap with the job
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": candidate},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	result, err := e.MatchCandidateToJob(context.Background(), "c1", "j1", nil)
	require.NoError(t, err)

	// skills 0.0, location/experience/salary 1.0 under default weights.
	assert.InDelta(t, 0.0, result.SkillScore, 1e-9)
	assert.InDelta(t, 0.5, result.TotalScore, 1e-9)
}

func TestMatchCandidateToJob_CustomWeights(t *testing.T) {
	candidate := strongCandidate("c1")
	candidate.Skills = []string{"Python"}
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": candidate},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	weights := &models.MatchWeights{Skills: 1}
	result, err := e.MatchCandidateToJob(context.Background(), "c1", "j1", weights)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.TotalScore, 1e-9)
}

func TestMatchCandidateToJob_MissingRecords(t *testing.T) {
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": strongCandidate("c1")},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	_, err := e.MatchCandidateToJob(context.Background(), "ghost", "j1", nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCandidateNotFound, errors.CodeOf(err))

	_, err = e.MatchCandidateToJob(context.Background(), "c1", "ghost", nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeJobNotFound, errors.CodeOf(err))
}

func TestMatchAvailability(t *testing.T) {
	candidate := strongCandidate("c1")
	candidate.Availability = &models.AvailabilityProfile{WorkingHours: models.WorkingHoursFixed}
	job := strongJob("j1")
	job.Availability = &models.AvailabilityProfile{WorkingHours: models.WorkingHoursFixed}

	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": candidate},
		jobs:       map[string]models.Job{"j1": job},
	}
	e := newTestEngine(t, recordStore)

	out, err := e.MatchAvailability(context.Background(), "c1", "j1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Score, 1e-9)
	assert.True(t, out.Match)
}
