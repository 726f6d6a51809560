// internal/store/postgres.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/models"
)

// PostgresStore reads records from the candidates and jobs tables. Record
// documents are stored in a JSONB profile column. When a Redis client is
// provided, reads go through the cache first and populate it on miss.
type PostgresStore struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewPostgresStore(db *sql.DB, redisClient *redis.Client, cacheTTL time.Duration, log logger.Logger) *PostgresStore {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &PostgresStore{
		db:       db,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		logger:   log,
	}
}

func (s *PostgresStore) GetCandidate(ctx context.Context, candidateID string) (*models.Candidate, error) {
	cacheKey := candidateCachePrefix + candidateID
	var candidate models.Candidate
	if s.cacheGet(ctx, cacheKey, &candidate) {
		return &candidate, nil
	}

	var doc []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT profile FROM candidates WHERE id = $1", candidateID,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, errors.NewCandidateNotFoundError(candidateID)
	}
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	if err := json.Unmarshal(doc, &candidate); err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	s.cacheSet(ctx, cacheKey, &candidate)
	return &candidate, nil
}

func (s *PostgresStore) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	cacheKey := jobCachePrefix + jobID
	var job models.Job
	if s.cacheGet(ctx, cacheKey, &job) {
		return &job, nil
	}

	var doc []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT profile FROM jobs WHERE id = $1", jobID,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, errors.NewJobNotFoundError(jobID)
	}
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	if err := json.Unmarshal(doc, &job); err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	s.cacheSet(ctx, cacheKey, &job)
	return &job, nil
}

// cacheGet reports whether the key was found and decoded. Cache failures are
// logged and treated as misses.
func (s *PostgresStore) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}
	raw, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Warn("Record cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("Record cache entry corrupt", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (s *PostgresStore) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Record cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
