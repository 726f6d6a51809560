// internal/embedding/embedding.go

// Package embedding defines the embedding provider collaborator. Providers
// must be deterministic per text and return fixed-length vectors for the
// lifetime of the process.
package embedding

import "context"

// Provider generates vector embeddings from text.
type Provider interface {
	// Embed returns a vector representation of the given text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}
