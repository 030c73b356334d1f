package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/edinet-cli/internal/edinet"
	"github.com/sells-group/edinet-cli/internal/report"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS documents (
	doc_id      TEXT PRIMARY KEY,
	filing_date TEXT NOT NULL,
	meta        TEXT NOT NULL,
	fetched_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS archives (
	doc_id     TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS reports (
	doc_id    TEXT PRIMARY KEY,
	kind      TEXT NOT NULL,
	data      TEXT NOT NULL,
	parsed_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	filing_date TEXT NOT NULL,
	total       INTEGER NOT NULL DEFAULT 0,
	parsed      INTEGER NOT NULL DEFAULT 0,
	failed      INTEGER NOT NULL DEFAULT 0,
	status      TEXT NOT NULL DEFAULT 'running',
	created_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_documents_filing_date ON documents(filing_date);
CREATE INDEX IF NOT EXISTS idx_reports_kind ON reports(kind);
CREATE INDEX IF NOT EXISTS idx_runs_filing_date ON runs(filing_date);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) UpsertDocuments(ctx context.Context, filingDate string, docs []edinet.DocumentMeta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin upsert documents")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (doc_id, filing_date, meta) VALUES (?, ?, ?)
		 ON CONFLICT(doc_id) DO UPDATE SET filing_date = excluded.filing_date, meta = excluded.meta`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare upsert documents")
	}
	defer stmt.Close()

	for _, d := range docs {
		metaJSON, err := json.Marshal(d)
		if err != nil {
			return eris.Wrapf(err, "sqlite: marshal document %s", d.DocID)
		}
		if _, err := stmt.ExecContext(ctx, d.DocID, filingDate, string(metaJSON)); err != nil {
			return eris.Wrapf(err, "sqlite: upsert document %s", d.DocID)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit upsert documents")
}

func (s *SQLiteStore) ListDocuments(ctx context.Context, filter DocumentFilter) ([]edinet.DocumentMeta, error) {
	query := `SELECT meta FROM documents WHERE 1=1`
	var args []any

	if filter.DocID != "" {
		query += ` AND doc_id = ?`
		args = append(args, filter.DocID)
	}
	if filter.FilingDate != "" {
		query += ` AND filing_date = ?`
		args = append(args, filter.FilingDate)
	}
	if filter.DocTypeCode != "" {
		query += ` AND json_extract(meta, '$.docTypeCode') = ?`
		args = append(args, filter.DocTypeCode)
	}
	if filter.EDINETCode != "" {
		query += ` AND json_extract(meta, '$.edinetCode') = ?`
		args = append(args, filter.EDINETCode)
	}
	query += ` ORDER BY doc_id`

	limit := filter.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list documents")
	}
	defer rows.Close()

	var docs []edinet.DocumentMeta
	for rows.Next() {
		var metaJSON string
		if err := rows.Scan(&metaJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan document")
		}
		var d edinet.DocumentMeta
		if err := json.Unmarshal([]byte(metaJSON), &d); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal document")
		}
		docs = append(docs, d)
	}
	return docs, eris.Wrap(rows.Err(), "sqlite: list documents iterate")
}

// GetArchive returns the cached archive bytes, or nil when not cached.
func (s *SQLiteStore) GetArchive(ctx context.Context, docID string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM archives WHERE doc_id = ?`, docID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get archive %s", docID)
	}
	return data, nil
}

func (s *SQLiteStore) PutArchive(ctx context.Context, docID string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO archives (doc_id, data) VALUES (?, ?)
		 ON CONFLICT(doc_id) DO UPDATE SET data = excluded.data, fetched_at = datetime('now')`,
		docID, data,
	)
	return eris.Wrapf(err, "sqlite: put archive %s", docID)
}

func (s *SQLiteStore) SaveReport(ctx context.Context, docID string, kind report.Kind, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reports (doc_id, kind, data) VALUES (?, ?, ?)
		 ON CONFLICT(doc_id) DO UPDATE SET kind = excluded.kind, data = excluded.data, parsed_at = datetime('now')`,
		docID, string(kind), string(data),
	)
	return eris.Wrapf(err, "sqlite: save report %s", docID)
}

func (s *SQLiteStore) GetReport(ctx context.Context, docID string) (*StoredReport, error) {
	var sr StoredReport
	var kind, data string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc_id, kind, data, parsed_at FROM reports WHERE doc_id = ?`, docID,
	).Scan(&sr.DocID, &kind, &data, &sr.ParsedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get report %s", docID)
	}
	sr.Kind = report.Kind(kind)
	sr.Data = []byte(data)
	return &sr, nil
}

func (s *SQLiteStore) CreateRun(ctx context.Context, filingDate string, total int) (*Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, filing_date, total, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, filingDate, total, RunStatusRunning, now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &Run{
		ID:         id,
		FilingDate: filingDate,
		Total:      total,
		Status:     RunStatusRunning,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (s *SQLiteStore) CompleteRun(ctx context.Context, runID string, parsed, failed int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET parsed = ?, failed = ?, status = ?, updated_at = ? WHERE id = ?`,
		parsed, failed, RunStatusComplete, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: complete run %s", runID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("run not found: %s", runID)
	}
	return nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filing_date, total, parsed, failed, status, created_at, updated_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.FilingDate, &r.Total, &r.Parsed, &r.Failed, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		runs = append(runs, r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}
