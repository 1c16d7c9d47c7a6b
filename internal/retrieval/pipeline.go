// Package retrieval orchestrates ingestion into and querying of the vector index.
package retrieval

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/chunker"
	"github.com/nyaysetu/nyaysetu/internal/embedding"
	"github.com/nyaysetu/nyaysetu/internal/extract"
	"github.com/nyaysetu/nyaysetu/internal/models"
	"github.com/nyaysetu/nyaysetu/internal/vector"
)

// DefaultTopK is the default number of passages retrieved per query.
const DefaultTopK = 5

// Pipeline is the sole writer of the vector index (ingestion) and its sole
// reader (query). All dependencies are injected once at startup and shared
// across requests.
type Pipeline struct {
	chunker   *chunker.Chunker
	embedder  embedding.Embedder
	index     vector.Index
	extractor *extract.Extractor
	indexPath string
	topK      int
	logger    *zap.Logger
}

// NewPipeline creates a retrieval pipeline. indexPath is where the index is
// persisted after each ingested document; empty disables persistence (tests).
func NewPipeline(
	ch *chunker.Chunker,
	embedder embedding.Embedder,
	index vector.Index,
	extractor *extract.Extractor,
	indexPath string,
	topK int,
	logger *zap.Logger,
) *Pipeline {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Pipeline{
		chunker:   ch,
		embedder:  embedder,
		index:     index,
		extractor: extractor,
		indexPath: indexPath,
		topK:      topK,
		logger:    logger,
	}
}

// IngestFile ingests one document: extract page text, chunk, embed all
// chunks in one batch, and commit them in one Upsert. Any failure abandons
// the whole document's batch; chunks from documents committed earlier are
// untouched. Errors wrap models.ErrIngestion.
func (p *Pipeline) IngestFile(ctx context.Context, path string) error {
	pages, err := p.extractor.ExtractPages(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrIngestion, path, err)
	}
	passages := p.buildPassages(path, pages)
	if len(passages) == 0 {
		return fmt.Errorf("%w: %s: no text content", models.ErrIngestion, path)
	}

	texts := make([]string, len(passages))
	for i, ps := range passages {
		texts[i] = ps.Content
	}
	vectors, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrIngestion, path, err)
	}

	ids := make([]string, len(passages))
	docs := make([]string, len(passages))
	metas := make([]models.PassageMeta, len(passages))
	for i, ps := range passages {
		ids[i] = ps.ID
		docs[i] = ps.Content
		metas[i] = ps.Meta
	}
	if err := p.index.Upsert(ctx, ids, vectors, docs, metas); err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrIngestion, path, err)
	}
	if p.indexPath != "" {
		if err := p.index.Save(p.indexPath); err != nil {
			p.logger.Warn("index save failed", zap.String("path", p.indexPath), zap.Error(err))
		}
	}
	p.logger.Info("document ingested",
		zap.String("source", path),
		zap.Int("chunks", len(passages)),
	)
	return nil
}

// buildPassages chunks each page and assigns document-wide chunk indices.
// IDs carry the source name, chunk index, and a random suffix so re-ingesting
// a document never collides with chunks from a prior run.
func (p *Pipeline) buildPassages(path string, pages []string) []models.Passage {
	docType := models.DocumentTypeFromPath(path)
	base := filepath.Base(path)
	var passages []models.Passage
	chunkIndex := 0
	for pageNum, pageText := range pages {
		for _, text := range p.chunker.Chunk(pageText) {
			passages = append(passages, models.Passage{
				ID:      fmt.Sprintf("%s_%d_%s", base, chunkIndex, uuid.New().String()[:8]),
				Content: text,
				Meta: models.PassageMeta{
					Source:       path,
					ChunkIndex:   chunkIndex,
					DocumentType: docType,
					Page:         pageNum,
				},
			})
			chunkIndex++
		}
	}
	return passages
}

// IngestPaths ingests each path independently and returns how many succeeded
// and how many failed. One document's failure never affects another's commit.
func (p *Pipeline) IngestPaths(ctx context.Context, paths []string) (ok, failed int) {
	for _, path := range paths {
		if err := p.IngestFile(ctx, path); err != nil {
			p.logger.Error("ingestion failed", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		ok++
	}
	return ok, failed
}

// Search embeds the query and returns the k nearest passages. Any failure
// degrades to an empty result set: callers treat "no results" as a valid
// outcome and never see a retrieval error.
func (p *Pipeline) Search(ctx context.Context, query string, k int) []*models.SearchResult {
	if k <= 0 {
		k = p.topK
	}
	vec, err := p.embedder.Embed(ctx, query)
	if err != nil {
		p.logger.Error("query embedding failed", zap.Error(fmt.Errorf("%w: %v", models.ErrRetrieval, err)))
		return []*models.SearchResult{}
	}
	results, err := p.index.Query(ctx, vec, k)
	if err != nil {
		p.logger.Error("similarity search failed", zap.Error(fmt.Errorf("%w: %v", models.ErrRetrieval, err)))
		return []*models.SearchResult{}
	}
	return results
}

// TopK returns the default result count for queries.
func (p *Pipeline) TopK() int { return p.topK }

// IndexSize returns the number of passages currently indexed.
func (p *Pipeline) IndexSize() int { return p.index.Size() }
