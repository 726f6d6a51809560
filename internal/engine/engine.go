// internal/engine/engine.go

// Package engine orchestrates the dimension scorers into single-pair and
// batch match computations.
package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"matching-engine/internal/common/logger"
	"matching-engine/internal/common/metrics"
	"matching-engine/internal/filter"
	"matching-engine/internal/models"
	"matching-engine/internal/scorers/availability"
	"matching-engine/internal/scorers/experience"
	"matching-engine/internal/scorers/location"
	"matching-engine/internal/scorers/salary"
	"matching-engine/internal/scorers/skills"
	"matching-engine/internal/store"
)

const (
	// DefaultChunkSize bounds concurrent pairings per batch group.
	DefaultChunkSize = 10
	// DefaultScoreThreshold drops weak pairings from batch results.
	DefaultScoreThreshold = 0.3
)

type Config struct {
	Weights        models.MatchWeights
	ChunkSize      int
	ScoreThreshold float64
}

func DefaultConfig() *Config {
	return &Config{
		Weights:        models.DefaultMatchWeights(),
		ChunkSize:      DefaultChunkSize,
		ScoreThreshold: DefaultScoreThreshold,
	}
}

// Engine computes match scores between candidates and jobs. Records come
// from the store, skill similarity from the skills scorer; the remaining
// dimensions are pure functions of the records.
type Engine struct {
	config   *Config
	store    store.RecordStore
	skills   *skills.Scorer
	location *location.Scorer
	logger   logger.Logger
}

func New(config *Config, recordStore store.RecordStore, skillScorer *skills.Scorer, locationScorer *location.Scorer, log logger.Logger) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if locationScorer == nil {
		locationScorer = location.NewScorer(location.DefaultConfig())
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Engine{
		config:   config,
		store:    recordStore,
		skills:   skillScorer,
		location: locationScorer,
		logger:   log,
	}
}

// MatchCandidateToJob fetches both records, scores all four dimensions and
// combines them into a weighted total. A nil weights argument uses the
// engine's configured weights.
func (e *Engine) MatchCandidateToJob(ctx context.Context, candidateID, jobID string, weights *models.MatchWeights) (*models.MatchResult, error) {
	start := time.Now()
	result, err := e.matchPair(ctx, candidateID, jobID, weights)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.MatchesComputed.WithLabelValues(status).Inc()
	metrics.MatchDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	return result, err
}

func (e *Engine) matchPair(ctx context.Context, candidateID, jobID string, weights *models.MatchWeights) (*models.MatchResult, error) {
	candidate, job, err := e.fetchPair(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}

	skillOut, err := e.skills.Match(ctx, candidate.Skills, job.RequiredSkills)
	if err != nil {
		return nil, err
	}

	locationOut := e.location.Match(candidate.Location, job.Location)
	experienceOut := experience.Match(candidate.YearsExperience, job.ExperienceRequired)
	salaryOut := salary.Match(candidate.SalaryExpectation, job.SalaryRange)

	w := e.config.Weights
	if weights != nil {
		w = *weights
	}

	result := &models.MatchResult{
		CandidateID:     candidateID,
		JobID:           jobID,
		SkillScore:      skillOut.Score,
		LocationScore:   locationOut.Score,
		ExperienceScore: experienceOut.Score,
		SalaryScore:     salaryOut.Score,
		MatchedSkills:   skillOut.MatchedSkills,
		LocationMatch:   locationOut.Match,
		ExperienceMatch: experienceOut.Match,
		SalaryMatch:     salaryOut.Match,
	}
	result.TotalScore = skillOut.Score*w.Skills +
		locationOut.Score*w.Location +
		experienceOut.Score*w.Experience +
		salaryOut.Score*w.Salary

	e.logger.Debug("Match computed", map[string]interface{}{
		"candidateId": candidateID,
		"jobId":       jobID,
		"totalScore":  result.TotalScore,
	})
	return result, nil
}

// fetchPair loads both records concurrently. The first failure wins and
// cancels the other lookup.
func (e *Engine) fetchPair(ctx context.Context, candidateID, jobID string) (*models.Candidate, *models.Job, error) {
	var (
		candidate *models.Candidate
		job       *models.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidate, err = e.store.GetCandidate(gctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = e.store.GetJob(gctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return candidate, job, nil
}

// MatchAvailability scores the optional availability profiles of a pair.
func (e *Engine) MatchAvailability(ctx context.Context, candidateID, jobID string) (*availability.Output, error) {
	candidate, job, err := e.fetchPair(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	return availability.Match(candidate.Availability, job.Availability), nil
}

// FilterCandidates applies a region filter spec to a candidate set.
func (e *Engine) FilterCandidates(spec filter.Spec, candidates []models.Candidate) *filter.Result {
	return filter.New(spec, e.logger).Apply(candidates)
}
