// Package extract provides text extraction from uploaded and corpus files.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Extractor extracts plain text from legal document files. It stands in for
// an OCR provider: best-effort text, no exceptions at the boundary.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor returns a new Extractor.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractText reads the file at path and returns its text content, or an
// empty string when the file cannot be read or parsed. Failures are logged,
// never returned.
func (e *Extractor) ExtractText(path string) string {
	pages, err := e.ExtractPages(path)
	if err != nil {
		e.logger.Warn("text extraction failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(strings.Join(pages, "\n"))
}

// ExtractPages returns the file's text split into page segments so ingestion
// can record best-effort page numbers. Formats without page structure (text,
// DOCX) come back as a single segment.
func (e *Extractor) ExtractPages(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFPages(content)
	case ".docx":
		text, err := extractDOCX(content)
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	default:
		text, err := extractPlain(content)
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	}
}
