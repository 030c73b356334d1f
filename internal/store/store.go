// Package store caches EDINET document lists, downloaded archives, and
// parsed reports in a local SQLite database. The archive cache is the
// important part: EDINET keeps documents for five years, but re-downloads
// are slow and rate-limited.
package store

import (
	"context"
	"time"

	"github.com/sells-group/edinet-cli/internal/edinet"
	"github.com/sells-group/edinet-cli/internal/report"
)

// DocumentFilter specifies criteria for listing cached documents.
type DocumentFilter struct {
	DocID       string `json:"doc_id,omitempty"`
	FilingDate  string `json:"filing_date,omitempty"` // YYYY-MM-DD
	DocTypeCode string `json:"doc_type_code,omitempty"`
	EDINETCode  string `json:"edinet_code,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}

// Run records one batch parsing run.
type Run struct {
	ID         string    `json:"id"`
	FilingDate string    `json:"filing_date"`
	Total      int       `json:"total"`
	Parsed     int       `json:"parsed"`
	Failed     int       `json:"failed"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Run statuses.
const (
	RunStatusRunning  = "running"
	RunStatusComplete = "complete"
)

// StoredReport is a persisted parse result: the report serialized as
// JSON, tagged with its kind.
type StoredReport struct {
	DocID    string      `json:"doc_id"`
	Kind     report.Kind `json:"kind"`
	Data     []byte      `json:"data"`
	ParsedAt time.Time   `json:"parsed_at"`
}

// Store defines the local persistence interface.
type Store interface {
	// Document lists
	UpsertDocuments(ctx context.Context, filingDate string, docs []edinet.DocumentMeta) error
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]edinet.DocumentMeta, error)

	// Archive cache
	GetArchive(ctx context.Context, docID string) ([]byte, error)
	PutArchive(ctx context.Context, docID string, data []byte) error

	// Parsed reports
	SaveReport(ctx context.Context, docID string, kind report.Kind, data []byte) error
	GetReport(ctx context.Context, docID string) (*StoredReport, error)

	// Batch runs
	CreateRun(ctx context.Context, filingDate string, total int) (*Run, error)
	CompleteRun(ctx context.Context, runID string, parsed, failed int) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
