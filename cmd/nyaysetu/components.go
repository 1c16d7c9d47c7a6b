package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/assistant"
	"github.com/nyaysetu/nyaysetu/internal/chunker"
	"github.com/nyaysetu/nyaysetu/internal/config"
	"github.com/nyaysetu/nyaysetu/internal/embedding"
	"github.com/nyaysetu/nyaysetu/internal/extract"
	"github.com/nyaysetu/nyaysetu/internal/llm"
	"github.com/nyaysetu/nyaysetu/internal/retrieval"
	"github.com/nyaysetu/nyaysetu/internal/storage"
	"github.com/nyaysetu/nyaysetu/internal/synthesis"
	"github.com/nyaysetu/nyaysetu/internal/vector"
)

// components holds the process-wide service instances. They are constructed
// once at startup, shared read-mostly by all requests, and torn down only at
// process exit.
type components struct {
	Embedder  embedding.Embedder
	Generator llm.Generator
	Index     vector.Index
	Pipeline  *retrieval.Pipeline
	Assistant *assistant.Assistant
	Extractor *extract.Extractor
	Store     storage.Store
}

// initializeComponents wires every service from config. A model that cannot
// be reached fails startup; nothing here is lazily retried per request.
func initializeComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*components, error) {
	embedder, err := embedding.NewOllamaEmbedder(ctx, cfg.Embedding.OllamaHost, cfg.Embedding.Model, cfg.Embedding.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("init embedder: %w", err)
	}

	generator, err := llm.NewOllamaGenerator(cfg.LLM.OllamaHost, cfg.LLM.Model)
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("init generator: %w", err)
	}

	index, err := vector.NewFlatIndex(cfg.Embedding.Dimensions)
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("init vector index: %w", err)
	}
	if err := index.Load(cfg.Storage.VectorIndexPath); err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("load vector index: %w", err)
	}
	logger.Info("vector index loaded",
		zap.String("path", cfg.Storage.VectorIndexPath),
		zap.Int("passages", index.Size()),
	)

	store, err := storage.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		_ = embedder.Close()
		return nil, fmt.Errorf("init record store: %w", err)
	}

	extractor := extract.NewExtractor(logger)
	ch := chunker.New(cfg.Search.ChunkSize, cfg.Search.ChunkOverlap)
	pipeline := retrieval.NewPipeline(ch, embedder, index, extractor, cfg.Storage.VectorIndexPath, cfg.Search.TopK, logger)
	synthesizer := synthesis.NewSynthesizer(generator, logger)
	asst := assistant.New(pipeline, synthesizer, generator, logger)

	return &components{
		Embedder:  embedder,
		Generator: generator,
		Index:     index,
		Pipeline:  pipeline,
		Assistant: asst,
		Extractor: extractor,
		Store:     store,
	}, nil
}

// Close releases all component resources.
func (c *components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
	if c.Index != nil {
		_ = c.Index.Close()
	}
	if c.Generator != nil {
		_ = c.Generator.Close()
	}
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
}
