// internal/scorers/skills/config.go
package skills

import "time"

type Config struct {
	SimilarityThreshold float64
	CacheTTL            time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		SimilarityThreshold: 0.75,
		CacheTTL:            time.Hour,
	}
}
