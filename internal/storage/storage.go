// Package storage defines the record store for query history and uploads.
// The retrieval core never touches it; only the HTTP layer persists records
// after a response has been produced.
package storage

import (
	"context"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// Store persists query history and uploaded document records.
type Store interface {
	// Query history
	CreateQueryRecord(ctx context.Context, rec *models.QueryRecord) error
	ListQueryRecords(ctx context.Context, offset, limit int) ([]*models.QueryRecord, error)
	CountQueryRecords(ctx context.Context) (int64, error)

	// Uploaded documents
	CreateDocument(ctx context.Context, doc *models.Document) error
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ListDocuments(ctx context.Context, offset, limit int) ([]*models.Document, error)
	CountDocuments(ctx context.Context) (int64, error)

	Close() error
}
