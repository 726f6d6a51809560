// internal/embedding/openai.go
package embedding

import (
	"context"
	"net/http"

	"matching-engine/internal/common/config"
	"matching-engine/internal/common/errors"
	"matching-engine/internal/common/metrics"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider calls an OpenAI-compatible embeddings API.
type OpenAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIProvider builds a provider from config. BaseURL may point at any
// OpenAI-compatible endpoint.
func NewOpenAIProvider(cfg config.EmbeddingConfig) *OpenAIProvider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{
		Timeout: config.GetDuration(cfg.Timeout),
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  openai.EmbeddingModel(cfg.Model),
	}
}

// Embed returns a vector representation of the given text.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := p.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch returns one vector per input text, in input order.
func (p *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: p.model,
	})
	if err != nil {
		metrics.EmbeddingCalls.WithLabelValues("error").Inc()
		return nil, errors.NewEmbeddingFailedError(err)
	}
	metrics.EmbeddingCalls.WithLabelValues("ok").Inc()

	vectors := make([][]float64, len(resp.Data))
	for i, item := range resp.Data {
		vec := make([]float64, len(item.Embedding))
		for j, f := range item.Embedding {
			vec[j] = float64(f)
		}
		vectors[i] = vec
	}

	return vectors, nil
}
