// internal/engine/batch_test.go
package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/models"
)

func TestBatchMatch_KeepsOnlyPairsAboveThreshold(t *testing.T) {
	// c1/j1 is a perfect fit. Every other pairing mismatches on skills and
	// location and lands at or below the score threshold.
	weakCandidate := models.Candidate{
		ID:                "c2",
		Skills:            []string{"React"},
		Location:          models.Location{City: "Tokyo", Country: "Japan"},
		YearsExperience:   1,
		SalaryExpectation: models.Range{Min: floatPtr(200000)},
	}
	weakJob := models.Job{
		ID:                 "j2",
		RequiredSkills:     []string{"Python"},
		Location:           models.Location{City: "Austin", Country: "USA"},
		ExperienceRequired: models.Range{Min: floatPtr(8), Max: floatPtr(12)},
		SalaryRange:        models.Range{Min: floatPtr(50000), Max: floatPtr(70000)},
	}

	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{
			"c1": strongCandidate("c1"),
			"c2": weakCandidate,
		},
		jobs: map[string]models.Job{
			"j1": strongJob("j1"),
			"j2": weakJob,
		},
	}
	e := newTestEngine(t, recordStore)

	results, err := e.BatchMatch(context.Background(), []string{"c1", "c2"}, []string{"j1", "j2"}, nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].CandidateID)
	assert.Equal(t, "j1", results[0].JobID)
	assert.Greater(t, results[0].TotalScore, 0.3)
}

func TestBatchMatch_SortedDescending(t *testing.T) {
	partialCandidate := strongCandidate("c2")
	partialCandidate.Skills = []string{"Python"} // loses the skill dimension

	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{
			"c1": strongCandidate("c1"),
			"c2": partialCandidate,
		},
		jobs: map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	results, err := e.BatchMatch(context.Background(), []string{"c2", "c1"}, []string{"j1"}, nil)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "c1", results[0].CandidateID)
	assert.Equal(t, "c2", results[1].CandidateID)
	assert.GreaterOrEqual(t, results[0].TotalScore, results[1].TotalScore)
}

func TestBatchMatch_StableOrderForEqualScores(t *testing.T) {
	// Two identical candidates tie on every dimension; enumeration order
	// breaks the tie.
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{
			"c1": strongCandidate("c1"),
			"c2": strongCandidate("c2"),
		},
		jobs: map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	results, err := e.BatchMatch(context.Background(), []string{"c2", "c1"}, []string{"j1"}, nil)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "c2", results[0].CandidateID)
	assert.Equal(t, "c1", results[1].CandidateID)
}

func TestBatchMatch_PairFailureDoesNotAbortBatch(t *testing.T) {
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": strongCandidate("c1")},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	results, err := e.BatchMatch(context.Background(), []string{"c1", "ghost"}, []string{"j1"}, nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].CandidateID)
}

func TestBatchMatch_EmptyInputs(t *testing.T) {
	e := newTestEngine(t, &fakeStore{})

	results, err := e.BatchMatch(context.Background(), nil, []string{"j1"}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchMatch_CanceledContext(t *testing.T) {
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{"c1": strongCandidate("c1")},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	e := newTestEngine(t, recordStore)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.BatchMatch(ctx, []string{"c1"}, []string{"j1"}, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBatchGroupCanceled, errors.CodeOf(err))
}

func TestBatchMatch_SpansMultipleChunks(t *testing.T) {
	recordStore := &fakeStore{
		candidates: map[string]models.Candidate{},
		jobs:       map[string]models.Job{"j1": strongJob("j1")},
	}
	candidateIDs := make([]string, 0, 25)
	for _, id := range []string{"c01", "c02", "c03", "c04", "c05", "c06", "c07", "c08", "c09", "c10",
		"c11", "c12", "c13", "c14", "c15", "c16", "c17", "c18", "c19", "c20",
		"c21", "c22", "c23", "c24", "c25"} {
		recordStore.candidates[id] = strongCandidate(id)
		candidateIDs = append(candidateIDs, id)
	}

	config := DefaultConfig()
	config.ChunkSize = 10
	e := newTestEngine(t, recordStore)
	e.config = config

	results, err := e.BatchMatch(context.Background(), candidateIDs, []string{"j1"}, nil)
	require.NoError(t, err)
	assert.Len(t, results, 25)
}
