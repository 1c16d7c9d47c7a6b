// Package server provides the HTTP API for NyaySetu.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/assistant"
	"github.com/nyaysetu/nyaysetu/internal/config"
	"github.com/nyaysetu/nyaysetu/internal/extract"
	"github.com/nyaysetu/nyaysetu/internal/retrieval"
	"github.com/nyaysetu/nyaysetu/internal/storage"
)

// Server is the HTTP server for the NyaySetu API.
type Server struct {
	assistant *assistant.Assistant
	pipeline  *retrieval.Pipeline
	store     storage.Store
	extractor *extract.Extractor
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	asst *assistant.Assistant,
	pipeline *retrieval.Pipeline,
	store storage.Store,
	extractor *extract.Extractor,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		assistant: asst,
		pipeline:  pipeline,
		store:     store,
		extractor: extractor,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/query/ask", s.handleAsk)
	r.Post("/api/v1/query/constitution", s.handleConstitution)
	r.Get("/api/v1/query/history", s.handleQueryHistory)
	r.Get("/api/v1/scenarios", s.handleScenarioList)
	r.Post("/api/v1/scenarios/analyze", s.handleScenarioAnalyze)
	r.Post("/api/v1/documents", s.handleUploadDocument)
	r.Get("/api/v1/documents", s.handleListDocuments)
	r.Get("/api/v1/documents/{id}", s.handleGetDocument)
	r.Delete("/api/v1/documents/{id}", s.handleDeleteDocument)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
