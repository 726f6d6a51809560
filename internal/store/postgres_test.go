// internal/store/postgres_test.go
package store

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/models"
)

const candidateQuery = "SELECT profile FROM candidates WHERE id = $1"
const jobQuery = "SELECT profile FROM jobs WHERE id = $1"

func testCandidate(id string) models.Candidate {
	return models.Candidate{
		ID:              id,
		Name:            "Test Candidate",
		Skills:          []string{"Go", "PostgreSQL"},
		Location:        models.Location{City: "Berlin", Country: "Germany"},
		YearsExperience: 5,
	}
}

func testJob(id string) models.Job {
	return models.Job{
		ID:             id,
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go"},
		Location:       models.Location{City: "Berlin", Country: "Germany"},
	}
}

func TestPostgresStore_GetCandidate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	candidate := testCandidate("cand-1")
	doc, err := json.Marshal(candidate)
	require.NoError(t, err)

	dbMock.ExpectQuery(regexp.QuoteMeta(candidateQuery)).
		WithArgs("cand-1").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow(doc))

	s := NewPostgresStore(db, nil, time.Minute, logger.NewTestLogger(t))
	got, err := s.GetCandidate(context.Background(), "cand-1")
	require.NoError(t, err)
	assert.Equal(t, &candidate, got)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresStore_GetCandidate_NotFound(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery(regexp.QuoteMeta(candidateQuery)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}))

	s := NewPostgresStore(db, nil, time.Minute, logger.NewTestLogger(t))
	_, err = s.GetCandidate(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, errors.ErrCodeCandidateNotFound, errors.CodeOf(err))
}

func TestPostgresStore_GetJob_NotFound(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery(regexp.QuoteMeta(jobQuery)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}))

	s := NewPostgresStore(db, nil, time.Minute, logger.NewTestLogger(t))
	_, err = s.GetJob(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeJobNotFound, errors.CodeOf(err))
}

func TestPostgresStore_GetJob_CacheMissThenHit(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	redisClient, redisMock := redismock.NewClientMock()

	job := testJob("job-1")
	doc, err := json.Marshal(job)
	require.NoError(t, err)

	// First call misses the cache, hits postgres, and writes back.
	redisMock.ExpectGet("record:job:job-1").RedisNil()
	dbMock.ExpectQuery(regexp.QuoteMeta(jobQuery)).
		WithArgs("job-1").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow(doc))
	redisMock.ExpectSet("record:job:job-1", doc, time.Minute).SetVal("OK")

	// Second call is served entirely from the cache.
	redisMock.ExpectGet("record:job:job-1").SetVal(string(doc))

	s := NewPostgresStore(db, redisClient, time.Minute, logger.NewTestLogger(t))

	first, err := s.GetJob(context.Background(), "job-1")
	require.NoError(t, err)
	second, err := s.GetJob(context.Background(), "job-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestPostgresStore_CacheFailureFallsBackToDatabase(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	redisClient, redisMock := redismock.NewClientMock()

	candidate := testCandidate("cand-2")
	doc, err := json.Marshal(candidate)
	require.NoError(t, err)

	redisMock.ExpectGet("record:candidate:cand-2").SetErr(assert.AnError)
	dbMock.ExpectQuery(regexp.QuoteMeta(candidateQuery)).
		WithArgs("cand-2").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow(doc))
	redisMock.ExpectSet("record:candidate:cand-2", doc, time.Minute).SetVal("OK")

	s := NewPostgresStore(db, redisClient, time.Minute, logger.NewTestLogger(t))
	got, err := s.GetCandidate(context.Background(), "cand-2")
	require.NoError(t, err)
	assert.Equal(t, &candidate, got)
}

func TestPostgresStore_QueryFailureIsRetryable(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery(regexp.QuoteMeta(candidateQuery)).
		WithArgs("cand-3").
		WillReturnError(assert.AnError)

	s := NewPostgresStore(db, nil, time.Minute, logger.NewTestLogger(t))
	_, err = s.GetCandidate(context.Background(), "cand-3")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStoreUnavailable, errors.CodeOf(err))
	assert.True(t, errors.IsRetryable(err))
}
