package models

import "time"

// Document is an uploaded file record kept in the relational store. The
// retrieval core never reads or writes these; they exist so users can ask
// follow-up questions about a file they uploaded.
type Document struct {
	ID            string    `json:"id" db:"id"`
	Filename      string    `json:"filename" db:"filename"`
	Path          string    `json:"-" db:"path"`
	ExtractedText string    `json:"extracted_text,omitempty" db:"extracted_text"`
	Processed     bool      `json:"processed" db:"processed"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// QueryRecord is one answered query kept for history. Persisted by the HTTP
// layer after a Synthesized answer is produced, never by the core.
type QueryRecord struct {
	ID           string    `json:"id" db:"id"`
	QueryText    string    `json:"query_text" db:"query_text"`
	ResponseText string    `json:"response_text" db:"response_text"`
	QueryType    string    `json:"query_type" db:"query_type"`
	Language     string    `json:"language" db:"language"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
