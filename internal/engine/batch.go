// internal/engine/batch.go
package engine

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"matching-engine/internal/common/errors"
	"matching-engine/internal/common/metrics"
	"matching-engine/internal/models"
)

type pairing struct {
	candidateID string
	jobID       string
}

// BatchMatch scores every candidate against every job. Pairings are
// enumerated candidate-major and processed in sequential groups of the
// configured chunk size; within a group all pairings run concurrently.
//
// A failed pairing is logged and dropped without affecting the rest of the
// batch. Results below the score threshold are dropped too. The returned
// slice is sorted by total score descending; equal scores keep enumeration
// order. Cancelling the context stops the batch between groups.
func (e *Engine) BatchMatch(ctx context.Context, candidateIDs, jobIDs []string, weights *models.MatchWeights) ([]models.MatchResult, error) {
	start := time.Now()
	defer func() {
		metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	batchLog := e.logger.WithFields(map[string]interface{}{"batchId": uuid.NewString()})

	pairs := make([]pairing, 0, len(candidateIDs)*len(jobIDs))
	for _, candidateID := range candidateIDs {
		for _, jobID := range jobIDs {
			pairs = append(pairs, pairing{candidateID: candidateID, jobID: jobID})
		}
	}

	// Slots are positioned by enumeration index so concurrent completion
	// order never changes result order.
	slots := make([]*models.MatchResult, len(pairs))

	chunkSize := e.config.ChunkSize
	for offset := 0; offset < len(pairs); offset += chunkSize {
		if err := ctx.Err(); err != nil {
			batchLog.Warn("Batch match canceled", map[string]interface{}{
				"processed": offset,
				"total":     len(pairs),
			})
			return nil, errors.NewBatchCanceledError(err)
		}

		end := offset + chunkSize
		if end > len(pairs) {
			end = len(pairs)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := offset; i < end; i++ {
			idx := i
			pair := pairs[i]
			g.Go(func() error {
				result, err := e.matchPair(gctx, pair.candidateID, pair.jobID, weights)
				if err != nil {
					batchLog.Warn("Batch pairing failed", map[string]interface{}{
						"candidateId": pair.candidateID,
						"jobId":       pair.jobID,
						"error":       err.Error(),
					})
					metrics.BatchPairsDropped.WithLabelValues(string(errors.CodeOf(err))).Inc()
					return nil
				}
				slots[idx] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	results := make([]models.MatchResult, 0, len(slots))
	for _, result := range slots {
		if result != nil && result.TotalScore > e.config.ScoreThreshold {
			results = append(results, *result)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	batchLog.Info("Batch match complete", map[string]interface{}{
		"candidates": len(candidateIDs),
		"jobs":       len(jobIDs),
		"pairings":   len(pairs),
		"results":    len(results),
	})
	return results, nil
}
