package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// OllamaEmbedder generates embeddings through a local Ollama server.
// A single instance is shared by all requests.
type OllamaEmbedder struct {
	client     *api.Client
	model      string
	dimensions int
	timeout    time.Duration
}

// NewOllamaEmbedder creates an embedder for the given model and probes the
// server once. An unreachable server or unknown model is reported as
// models.ErrModelUnavailable; callers treat that as fatal at startup.
func NewOllamaEmbedder(ctx context.Context, host, model string, dimensions int) (*OllamaEmbedder, error) {
	hostURL := envconfig.Host()
	if host != "" {
		parsed, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("parse ollama host: %w", err)
		}
		hostURL = parsed
	}
	e := &OllamaEmbedder{
		client:     api.NewClient(hostURL, http.DefaultClient),
		model:      model,
		dimensions: dimensions,
		timeout:    30 * time.Second,
	}
	if _, err := e.Embed(ctx, "startup probe"); err != nil {
		return nil, fmt.Errorf("%w: embedding model %q: %v", models.ErrModelUnavailable, model, err)
	}
	return e, nil
}

// Embed returns the unit-normalized embedding for text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	resp, err := e.client.Embeddings(ctx, &api.EmbeddingRequest{
		Model:  e.model,
		Prompt: text,
	})
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	vec := make([]float32, len(resp.Embedding))
	for i, v := range resp.Embedding {
		vec[i] = float32(v)
	}
	Normalize(vec)
	return vec, nil
}

// EmbedBatch embeds texts one by one, preserving input order. The Ollama
// embeddings endpoint takes a single prompt, so the batch is sequential;
// ingestion is offline so latency is acceptable.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed batch item %d: %w", i, err)
		}
		vecs[i] = vec
	}
	return vecs, nil
}

// Dimensions returns the configured embedding dimension.
func (e *OllamaEmbedder) Dimensions() int {
	return e.dimensions
}

// Close is a no-op; the underlying HTTP client has no resources to release.
func (e *OllamaEmbedder) Close() error {
	return nil
}
