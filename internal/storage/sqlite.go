package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes the schema.
// Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS queries (
		id TEXT PRIMARY KEY,
		query_text TEXT NOT NULL,
		response_text TEXT NOT NULL,
		query_type TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'en',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_queries_created_at ON queries(created_at);

	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		path TEXT NOT NULL,
		extracted_text TEXT,
		processed INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// CreateQueryRecord inserts one answered query into the history.
func (s *SQLiteStore) CreateQueryRecord(ctx context.Context, rec *models.QueryRecord) error {
	rec.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (id, query_text, response_text, query_type, language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.QueryText, rec.ResponseText, rec.QueryType, rec.Language, rec.CreatedAt,
	)
	return err
}

// ListQueryRecords returns query history newest first.
func (s *SQLiteStore) ListQueryRecords(ctx context.Context, offset, limit int) ([]*models.QueryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query_text, response_text, query_type, language, created_at
		 FROM queries ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.QueryRecord
	for rows.Next() {
		var rec models.QueryRecord
		if err := rows.Scan(&rec.ID, &rec.QueryText, &rec.ResponseText, &rec.QueryType, &rec.Language, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// CountQueryRecords returns the number of stored queries.
func (s *SQLiteStore) CountQueryRecords(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM queries`).Scan(&n)
	return n, err
}

// CreateDocument inserts an uploaded document record.
func (s *SQLiteStore) CreateDocument(ctx context.Context, doc *models.Document) error {
	doc.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, filename, path, extracted_text, processed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Filename, doc.Path, doc.ExtractedText, doc.Processed, doc.CreatedAt,
	)
	return err
}

// GetDocument returns a document record by ID.
func (s *SQLiteStore) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := s.db.QueryRowContext(ctx,
		`SELECT id, filename, path, extracted_text, processed, created_at
		 FROM documents WHERE id = ?`, id,
	).Scan(&doc.ID, &doc.Filename, &doc.Path, &doc.ExtractedText, &doc.Processed, &doc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a document record.
func (s *SQLiteStore) DeleteDocument(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	return err
}

// ListDocuments returns document records newest first.
func (s *SQLiteStore) ListDocuments(ctx context.Context, offset, limit int) ([]*models.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, path, extracted_text, processed, created_at
		 FROM documents ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.Filename, &doc.Path, &doc.ExtractedText, &doc.Processed, &doc.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// CountDocuments returns the number of uploaded documents.
func (s *SQLiteStore) CountDocuments(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	return n, err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
