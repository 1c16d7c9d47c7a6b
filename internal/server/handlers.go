package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/models"
	"github.com/nyaysetu/nyaysetu/internal/storage"
	"github.com/nyaysetu/nyaysetu/pkg/utils"
)

// maxUploadBytes caps uploaded file size at 10MB.
const maxUploadBytes = 10 << 20

// allowedUploadExts are the file types accepted for document upload.
var allowedUploadExts = map[string]bool{".pdf": true, ".txt": true, ".docx": true}

type askRequest struct {
	Query      string `json:"query"`
	Language   string `json:"language"`
	DocumentID string `json:"document_id,omitempty"`
}

// handleAsk answers a general legal question. Query-path failures never
// produce an error status: the assistant always returns a well-formed
// answer, so the only client errors here are malformed requests and unknown
// document references.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	documentContext := ""
	if req.DocumentID != "" {
		doc, err := s.store.GetDocument(r.Context(), req.DocumentID)
		if err != nil {
			s.respondError(w, http.StatusNotFound, "document not found")
			return
		}
		documentContext = doc.ExtractedText
	}

	answer := s.assistant.AnswerQuery(r.Context(), req.Query, req.Language, documentContext)
	s.saveQueryRecord(r, req.Query, answer.Response, "general", req.Language)
	s.respondJSON(w, http.StatusOK, answer)
}

type constitutionRequest struct {
	ArticleOrTerm string `json:"article_or_term"`
	Language      string `json:"language"`
}

func (s *Server) handleConstitution(w http.ResponseWriter, r *http.Request) {
	var req constitutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ArticleOrTerm) == "" {
		s.respondError(w, http.StatusBadRequest, "article_or_term is required")
		return
	}
	answer := s.assistant.ExplainArticle(r.Context(), req.ArticleOrTerm, req.Language)
	s.saveQueryRecord(r, "Constitution: "+req.ArticleOrTerm, answer.Response, "constitution", req.Language)
	s.respondJSON(w, http.StatusOK, answer)
}

func (s *Server) handleScenarioList(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": s.assistant.Scenarios(),
	})
}

type scenarioRequest struct {
	ScenarioType string `json:"scenario_type"`
	Description  string `json:"description"`
	Language     string `json:"language"`
}

func (s *Server) handleScenarioAnalyze(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	answer := s.assistant.AnalyzeScenario(r.Context(), req.ScenarioType, req.Description, req.Language)
	s.saveQueryRecord(r, "Scenario: "+req.ScenarioType+" - "+req.Description, answer.Response, "scenario", req.Language)
	s.respondJSON(w, http.StatusOK, answer)
}

// handleUploadDocument stores an uploaded file, extracts its text, records
// it, and returns the extraction result with an immediate analysis. A file
// whose text cannot be extracted is still recorded, just unprocessed.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		s.respondError(w, http.StatusBadRequest, "unsupported file type")
		return
	}

	id := uuid.New().String()
	if err := os.MkdirAll(s.config.Storage.UploadDir, 0755); err != nil {
		s.logger.Error("create upload dir failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}
	destPath := filepath.Join(s.config.Storage.UploadDir, id+ext)
	dest, err := os.Create(destPath)
	if err != nil {
		s.logger.Error("create upload file failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}
	if _, err := io.Copy(dest, file); err != nil {
		_ = dest.Close()
		s.logger.Error("write upload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}
	_ = dest.Close()

	text := s.extractor.ExtractText(destPath)
	doc := &models.Document{
		ID:            id,
		Filename:      header.Filename,
		Path:          destPath,
		ExtractedText: text,
		Processed:     text != "",
	}
	if err := s.store.CreateDocument(r.Context(), doc); err != nil {
		s.logger.Error("store document failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "could not store document")
		return
	}

	var analysis *models.DocumentAnalysis
	langParam := r.FormValue("language")
	if text != "" {
		analysis = s.assistant.AnalyzeDocument(r.Context(), text, langParam)
	}
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"document": doc,
		"analysis": analysis,
	})
}

// historyLimit caps how many records the history endpoint returns.
const historyLimit = 20

func (s *Server) handleQueryHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListQueryRecords(r.Context(), 0, historyLimit)
	if err != nil {
		s.logger.Error("list query history failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "could not fetch history")
		return
	}
	for _, rec := range records {
		rec.ResponseText = utils.Truncate(rec.ResponseText, 200)
	}
	if records == nil {
		records = []*models.QueryRecord{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"queries": records})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListDocuments(r.Context(), 0, historyLimit)
	if err != nil {
		s.logger.Error("list documents failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "could not list documents")
		return
	}
	// Listings identify documents; the extracted text is only served by the
	// single-document endpoint.
	for _, doc := range docs {
		doc.ExtractedText = ""
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.GetDocument(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.GetDocument(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "document not found")
		return
	}
	if err := s.store.DeleteDocument(r.Context(), id); err != nil {
		s.logger.Error("delete document failed", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if doc.Path != "" {
		if err := os.Remove(doc.Path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("delete uploaded file failed", zap.String("path", doc.Path), zap.Error(err))
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	docCount, err := s.store.CountDocuments(ctx)
	if err != nil {
		s.logger.Error("status: count documents failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	queryCount, err := s.store.CountQueryRecords(ctx)
	if err != nil {
		s.logger.Error("status: count queries failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := map[string]interface{}{
		"passages":  s.pipeline.IndexSize(),
		"documents": docCount,
		"queries":   queryCount,
		"config": map[string]interface{}{
			"embedding_model":      s.config.Embedding.Model,
			"embedding_dimensions": s.config.Embedding.Dimensions,
			"llm_model":            s.config.LLM.Model,
			"chunk_size":           s.config.Search.ChunkSize,
			"chunk_overlap":        s.config.Search.ChunkOverlap,
			"top_k":                s.config.Search.TopK,
			"languages":            s.config.Search.Languages,
		},
	}
	diskBytes, err := storage.DiskUsageBytes(
		s.config.Storage.DatabasePath,
		s.config.Storage.VectorIndexPath,
		s.config.Storage.UploadDir,
	)
	if err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// saveQueryRecord persists a query to history. Best effort: a storage
// failure is logged and never affects the response.
func (s *Server) saveQueryRecord(r *http.Request, query, response, queryType, language string) {
	rec := &models.QueryRecord{
		ID:           uuid.New().String(),
		QueryText:    query,
		ResponseText: response,
		QueryType:    queryType,
		Language:     language,
	}
	if err := s.store.CreateQueryRecord(r.Context(), rec); err != nil {
		s.logger.Warn("save query record failed", zap.Error(err))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
