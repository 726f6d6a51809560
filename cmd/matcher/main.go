// cmd/matcher/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"matching-engine/internal/common/config"
	"matching-engine/internal/common/database"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/common/observability"
	"matching-engine/internal/embedding"
	"matching-engine/internal/engine"
	"matching-engine/internal/models"
	"matching-engine/internal/scorers/location"
	"matching-engine/internal/scorers/skills"
	"matching-engine/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	candidateID := flag.String("candidate", "", "candidate ID for a single match")
	jobID := flag.String("job", "", "job ID for a single match")
	candidateIDs := flag.String("candidates", "", "comma-separated candidate IDs for a batch match")
	jobIDs := flag.String("jobs", "", "comma-separated job IDs for a batch match")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall operation timeout")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting matching engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Pick the record store backend ---
	var recordStore store.RecordStore
	if len(cfg.Database.Elasticsearch.Addresses) > 0 {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		recordStore = store.NewElasticsearchStore(
			esClient.Client,
			cfg.Database.Elasticsearch.CandidateIndex,
			cfg.Database.Elasticsearch.JobIndex,
			log,
		)
		zapLog.Info("Elasticsearch record store selected")
	} else {
		recordStore = store.NewPostgresStore(
			pg.DB,
			redis.Client,
			time.Duration(cfg.Matching.RecordCacheTTL)*time.Second,
			log,
		)
		zapLog.Info("PostgreSQL record store selected")
	}

	// --- Init scorers and engine ---
	provider := embedding.NewOpenAIProvider(cfg.Embedding)

	skillScorer := skills.NewScorer(
		&skills.Config{
			SimilarityThreshold: cfg.Matching.SkillThreshold,
			CacheTTL:            time.Duration(cfg.Matching.SkillCacheTTL) * time.Second,
		},
		provider, redis.Client, log,
	)

	locationScorer := location.NewScorer(&location.Config{
		DefaultMaxDistanceKm: cfg.Matching.DefaultMaxDistanceKm,
	})

	matchEngine := engine.New(
		&engine.Config{
			Weights: models.MatchWeights{
				Skills:     cfg.Matching.Weights.Skills,
				Location:   cfg.Matching.Weights.Location,
				Experience: cfg.Matching.Weights.Experience,
				Salary:     cfg.Matching.Weights.Salary,
			},
			ChunkSize:      cfg.Matching.ChunkSize,
			ScoreThreshold: cfg.Matching.ScoreThreshold,
		},
		recordStore, skillScorer, locationScorer, log,
	)
	zapLog.Info("Matching engine initialized")

	// --- Metrics/pprof listener for long batch runs ---
	if cfg.App.MetricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Metrics server listening", zap.String("addr", cfg.App.MetricsAddr))
			if err := http.ListenAndServe(cfg.App.MetricsAddr, nil); err != nil {
				zapLog.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Run the requested operation ---
	var output interface{}
	switch {
	case *candidateID != "" && *jobID != "":
		output, err = matchEngine.MatchCandidateToJob(ctx, *candidateID, *jobID, nil)
	case *candidateIDs != "" && *jobIDs != "":
		output, err = matchEngine.BatchMatch(ctx, splitIDs(*candidateIDs), splitIDs(*jobIDs), nil)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		zapLog.Fatal("match failed", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		zapLog.Fatal("result encoding failed", zap.Error(err))
	}

	zapLog.Info("Matching engine finished")
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
