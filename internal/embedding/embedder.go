// Package embedding provides text embedding via the Ollama API.
package embedding

import (
	"context"
	"math"
)

// Embedder produces vector embeddings for text. Embeddings are deterministic
// for a fixed model and input; EmbedBatch preserves input order so output i
// corresponds to input i. Query embeddings are recomputed per call, never
// cached across queries.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}

// Normalize scales vec to unit length in place so inner product equals
// cosine similarity. A zero vector is left unchanged.
func Normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(1.0 / math.Sqrt(sum))
	for i := range vec {
		vec[i] *= norm
	}
}
