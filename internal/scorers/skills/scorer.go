// internal/scorers/skills/scorer.go
package skills

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"matching-engine/internal/common/logger"
	"matching-engine/internal/common/metrics"
	"matching-engine/internal/embedding"
	"matching-engine/internal/geo"
	"matching-engine/internal/models"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "match:skills:"

// Scorer matches candidate skills against job-required skills using
// embedding similarity. Results are cached in redis; the cache is
// best-effort and an outage degrades to always-recompute.
type Scorer struct {
	config   *Config
	provider embedding.Provider
	redis    *redis.Client
	logger   logger.Logger
}

// NewScorer builds a skill scorer. redisClient may be nil to disable
// caching entirely.
func NewScorer(config *Config, provider embedding.Provider, redisClient *redis.Client, log logger.Logger) *Scorer {
	return &Scorer{
		config:   config,
		provider: provider,
		redis:    redisClient,
		logger:   log.WithFields(map[string]interface{}{"scorer": "skills"}),
	}
}

// Match computes the aggregate skill score in [0,1] and the per-job-skill
// best matches. For each job skill the single candidate skill with the
// highest similarity strictly above the threshold wins; ties keep the
// first-encountered candidate skill in input order. A job skill with no
// candidate above the threshold contributes zero and is omitted. The
// aggregate is the sum of best similarities divided by the number of job
// skills.
func (s *Scorer) Match(ctx context.Context, candidateSkills, jobSkills []string) (*Output, error) {
	if len(jobSkills) == 0 {
		return &Output{Score: 0, MatchedSkills: []models.SkillMatch{}}, nil
	}

	key := cacheKey(candidateSkills, jobSkills)
	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	vectors, err := s.embedAll(ctx, candidateSkills, jobSkills)
	if err != nil {
		return nil, err
	}

	matched := make([]models.SkillMatch, 0, len(jobSkills))
	var total float64

	for _, jobSkill := range jobSkills {
		jobVec := vectors[jobSkill]

		best := 0.0
		found := false
		for _, candSkill := range candidateSkills {
			sim, err := geo.CosineSimilarity(vectors[candSkill], jobVec)
			if err != nil {
				return nil, err
			}
			sim = clamp01(sim)

			// Strictly greater than both threshold and current best, so
			// the first-encountered candidate wins ties.
			if sim > s.config.SimilarityThreshold && sim > best {
				best = sim
				found = true
			}
		}

		if found {
			total += best
			matched = append(matched, models.SkillMatch{Skill: jobSkill, Score: best})
		}
	}

	out := &Output{
		Score:         total / float64(len(jobSkills)),
		MatchedSkills: matched,
	}

	s.cacheSet(ctx, key, out)

	return out, nil
}

// embedAll fetches vectors for every distinct skill on both sides in a
// single batched provider call.
func (s *Scorer) embedAll(ctx context.Context, candidateSkills, jobSkills []string) (map[string][]float64, error) {
	distinct := make([]string, 0, len(candidateSkills)+len(jobSkills))
	seen := make(map[string]bool, len(candidateSkills)+len(jobSkills))
	for _, skill := range append(append([]string{}, candidateSkills...), jobSkills...) {
		if !seen[skill] {
			seen[skill] = true
			distinct = append(distinct, skill)
		}
	}

	embedded, err := s.provider.EmbedBatch(ctx, distinct)
	if err != nil {
		return nil, err
	}

	vectors := make(map[string][]float64, len(distinct))
	for i, skill := range distinct {
		vectors[skill] = embedded[i]
	}
	return vectors, nil
}

func (s *Scorer) cacheGet(ctx context.Context, key string) *Output {
	if s.redis == nil {
		return nil
	}

	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("skill cache read failed", map[string]interface{}{"error": err})
		}
		metrics.SkillCacheLookups.WithLabelValues("miss").Inc()
		return nil
	}

	var out Output
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		metrics.SkillCacheLookups.WithLabelValues("corrupt").Inc()
		return nil
	}

	metrics.SkillCacheLookups.WithLabelValues("hit").Inc()
	return &out
}

func (s *Scorer) cacheSet(ctx context.Context, key string, out *Output) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, key, data, s.config.CacheTTL).Err(); err != nil {
		s.logger.Debug("skill cache write failed", map[string]interface{}{"error": err})
	}
}

// cacheKey derives a stable key from the sorted, concatenated skill lists
// on both sides.
func cacheKey(candidateSkills, jobSkills []string) string {
	cand := append([]string{}, candidateSkills...)
	job := append([]string{}, jobSkills...)
	sort.Strings(cand)
	sort.Strings(job)

	sum := sha256.Sum256([]byte(strings.Join(cand, ",") + "|" + strings.Join(job, ",")))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
