// Package models defines core data structures for passages, search results, and answers.
package models

import (
	"path/filepath"
	"strings"
)

// DocumentType classifies a source legal text, inferred from its filename.
type DocumentType string

const (
	DocTypeConstitution DocumentType = "constitution"
	DocTypeIPC          DocumentType = "ipc"
	DocTypeCrPC         DocumentType = "crpc"
	DocTypeAct          DocumentType = "act"
	DocTypeGeneral      DocumentType = "general"
)

// DocumentTypeFromPath infers the document type from the file name.
// Paths with no recognizable marker are classified as acts; an empty
// path (raw text with no file origin) is general.
func DocumentTypeFromPath(path string) DocumentType {
	if path == "" {
		return DocTypeGeneral
	}
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "constitution"):
		return DocTypeConstitution
	case strings.Contains(name, "ipc"):
		return DocTypeIPC
	case strings.Contains(name, "crpc"):
		return DocTypeCrPC
	default:
		return DocTypeAct
	}
}

// PassageMeta is the metadata stored alongside each passage in the vector index.
type PassageMeta struct {
	Source       string       `json:"source"`
	ChunkIndex   int          `json:"chunk_index"`
	DocumentType DocumentType `json:"document_type"`
	Page         int          `json:"page"`
}

// Passage is a chunk of a source legal text, created at ingestion time and
// immutable thereafter. ID is {source base name}_{chunk index}_{random suffix}
// so re-ingesting a document never collides with chunks from a prior run.
type Passage struct {
	ID      string      `json:"id"`
	Content string      `json:"content"`
	Meta    PassageMeta `json:"metadata"`
}
