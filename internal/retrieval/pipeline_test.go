package retrieval

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/chunker"
	"github.com/nyaysetu/nyaysetu/internal/embedding"
	"github.com/nyaysetu/nyaysetu/internal/extract"
	"github.com/nyaysetu/nyaysetu/internal/models"
	"github.com/nyaysetu/nyaysetu/internal/vector"
)

// failingEmbedder always errors.
type failingEmbedder struct{}

func (failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("model unavailable")
}

func (failingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, fmt.Errorf("model unavailable")
}

func (failingEmbedder) Dimensions() int { return 8 }
func (failingEmbedder) Close() error    { return nil }

func newTestPipeline(t *testing.T, embedder embedding.Embedder) (*Pipeline, *vector.FlatIndex) {
	t.Helper()
	idx, err := vector.NewFlatIndex(embedder.Dimensions())
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	logger := zap.NewNop()
	p := NewPipeline(chunker.New(500, 50), embedder, idx, extract.NewExtractor(logger), "", 5, logger)
	return p, idx
}

func writeCorpusFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write corpus file: %v", err)
	}
	return path
}

func TestIngestFile_ChunksAndMetadata(t *testing.T) {
	p, idx := newTestPipeline(t, embedding.NewMockEmbedder(8))
	// 1200 runes with no separators: 500/50 chunking gives exactly 3 chunks.
	path := writeCorpusFile(t, "constitution_of_india.txt", strings.Repeat("abcdefghij", 120))

	if err := p.IngestFile(context.Background(), path); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if idx.Size() != 3 {
		t.Fatalf("expected 3 indexed passages, got %d", idx.Size())
	}

	results := p.Search(context.Background(), "abcdefghij", 3)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Meta.Source != path {
			t.Errorf("result %d source: got %q, want %q", i, r.Meta.Source, path)
		}
		if r.Meta.DocumentType != models.DocTypeConstitution {
			t.Errorf("result %d document type: got %q", i, r.Meta.DocumentType)
		}
		if r.Meta.Page != 0 {
			t.Errorf("result %d page: got %d, want 0", i, r.Meta.Page)
		}
	}
}

func TestIngestFile_EmbedFailureCommitsNothing(t *testing.T) {
	idx, err := vector.NewFlatIndex(8)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	logger := zap.NewNop()
	p := NewPipeline(chunker.New(500, 50), failingEmbedder{}, idx, extract.NewExtractor(logger), "", 5, logger)
	path := writeCorpusFile(t, "ipc.txt", "Section 420 deals with cheating.")

	err = p.IngestFile(context.Background(), path)
	if err == nil {
		t.Fatal("expected error from failing embedder")
	}
	if !errors.Is(err, models.ErrIngestion) {
		t.Errorf("error must wrap ErrIngestion, got %v", err)
	}
	if idx.Size() != 0 {
		t.Errorf("failed ingestion must commit nothing, index has %d entries", idx.Size())
	}
}

func TestIngestFile_MissingFile(t *testing.T) {
	p, _ := newTestPipeline(t, embedding.NewMockEmbedder(8))
	err := p.IngestFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, models.ErrIngestion) {
		t.Errorf("error must wrap ErrIngestion, got %v", err)
	}
}

func TestIngestFile_EmptyFile(t *testing.T) {
	p, idx := newTestPipeline(t, embedding.NewMockEmbedder(8))
	path := writeCorpusFile(t, "blank.txt", "   \n\n  ")
	err := p.IngestFile(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for file with no text content")
	}
	if !errors.Is(err, models.ErrIngestion) {
		t.Errorf("error must wrap ErrIngestion, got %v", err)
	}
	if idx.Size() != 0 {
		t.Errorf("empty document must commit nothing, index has %d entries", idx.Size())
	}
}

func TestIngestPaths_IsolatesFailures(t *testing.T) {
	p, idx := newTestPipeline(t, embedding.NewMockEmbedder(8))
	good := writeCorpusFile(t, "crpc.txt", "Section 154 requires the police to register an FIR.")
	bad := filepath.Join(t.TempDir(), "absent.txt")

	ok, failed := p.IngestPaths(context.Background(), []string{good, bad})
	if ok != 1 || failed != 1 {
		t.Errorf("expected 1 ok / 1 failed, got %d / %d", ok, failed)
	}
	if idx.Size() == 0 {
		t.Error("the good document must still be committed")
	}
}

func TestSearch_DegradesToEmpty(t *testing.T) {
	idx, err := vector.NewFlatIndex(8)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	logger := zap.NewNop()
	p := NewPipeline(chunker.New(500, 50), failingEmbedder{}, idx, extract.NewExtractor(logger), "", 5, logger)

	results := p.Search(context.Background(), "any query", 5)
	if results == nil {
		t.Fatal("degraded search must return an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_EmptyIndex(t *testing.T) {
	p, _ := newTestPipeline(t, embedding.NewMockEmbedder(8))
	results := p.Search(context.Background(), "what is bail", 0)
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty result set, got %v", results)
	}
}

func TestSearch_DefaultTopK(t *testing.T) {
	p, idx := newTestPipeline(t, embedding.NewMockEmbedder(8))
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		path := writeCorpusFile(t, fmt.Sprintf("act_%d.txt", i), fmt.Sprintf("Provision number %d of the act.", i))
		if err := p.IngestFile(ctx, path); err != nil {
			t.Fatalf("ingest %d: %v", i, err)
		}
	}
	if idx.Size() != 10 {
		t.Fatalf("expected 10 passages, got %d", idx.Size())
	}
	results := p.Search(ctx, "provision", 0)
	if len(results) != p.TopK() {
		t.Errorf("k<=0 must use default top-k %d, got %d results", p.TopK(), len(results))
	}
}
