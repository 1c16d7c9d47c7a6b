// Package vector provides the persistent passage index and similarity search.
package vector

import (
	"context"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// Index stores (vector, passage text, metadata) triples and answers
// k-nearest-neighbor queries by cosine distance. The retrieval pipeline is
// the sole writer during ingestion and the sole reader during query; the
// index must tolerate concurrent readers and writers.
type Index interface {
	// Upsert adds or overwrites entries. All four slices must have equal
	// length; re-upserting an existing ID replaces its vector, text, and
	// metadata. Callers generate collision-resistant IDs.
	Upsert(ctx context.Context, ids []string, vectors [][]float32, documents []string, metadatas []models.PassageMeta) error

	// Query returns up to k results ordered by ascending distance. An empty
	// index yields an empty slice, never an error.
	Query(ctx context.Context, vector []float32, k int) ([]*models.SearchResult, error)

	// Save persists the index to path.
	Save(path string) error

	// Load replaces the index contents from path. A missing file means the
	// collection does not exist yet: the index stays empty and no error is
	// returned.
	Load(path string) error

	Size() int
	Close() error
}
