// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_operations_total",
			Help: "Total number of candidate/job match computations",
		},
		[]string{"status"},
	)

	MatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_duration_seconds",
			Help: "Duration of a single candidate/job match computation",
		},
		[]string{"status"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "match_batch_duration_seconds",
			Help: "Duration of a full batch match run",
		},
	)

	BatchPairsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_batch_pairs_dropped_total",
			Help: "Pairings dropped from batch results due to per-pair failures",
		},
		[]string{"error_code"},
	)

	SkillCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_skill_cache_lookups_total",
			Help: "Skill-match cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	EmbeddingCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_embedding_calls_total",
			Help: "Embedding provider calls by status",
		},
		[]string{"status"},
	)
)
