// internal/store/store.go

// Package store provides candidate and job record lookups backed by
// PostgreSQL or Elasticsearch, with an optional Redis read-through cache.
package store

import (
	"context"

	"matching-engine/internal/models"
)

// RecordStore retrieves candidate and job records by ID.
type RecordStore interface {
	GetCandidate(ctx context.Context, candidateID string) (*models.Candidate, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
}

const (
	candidateCachePrefix = "record:candidate:"
	jobCachePrefix       = "record:job:"
)
