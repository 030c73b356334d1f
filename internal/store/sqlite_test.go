package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edinet-cli/internal/edinet"
	"github.com/sells-group/edinet-cli/internal/report"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// A file-backed database: with the connection pool, :memory: would give
	// each connection its own empty database.
	s, err := NewSQLite(filepath.Join(t.TempDir(), "edinet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func meta(docID, typeCode, edinetCode string) edinet.DocumentMeta {
	return edinet.DocumentMeta{
		DocID:       docID,
		EDINETCode:  edinetCode,
		DocTypeCode: typeCode,
		FilerName:   "テスト株式会社",
		CSVFlag:     "1",
	}
}

func TestDocuments_UpsertAndFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	docs := []edinet.DocumentMeta{
		meta("S100AAA1", "120", "E10001"),
		meta("S100AAA2", "350", "E10002"),
		meta("S100AAA3", "350", "E10001"),
	}
	require.NoError(t, s.UpsertDocuments(ctx, "2026-02-02", docs))

	all, err := s.ListDocuments(ctx, DocumentFilter{FilingDate: "2026-02-02"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byType, err := s.ListDocuments(ctx, DocumentFilter{DocTypeCode: "350"})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	byFiler, err := s.ListDocuments(ctx, DocumentFilter{EDINETCode: "E10001"})
	require.NoError(t, err)
	assert.Len(t, byFiler, 2)

	byID, err := s.ListDocuments(ctx, DocumentFilter{DocID: "S100AAA2", Limit: 1})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "350", byID[0].DocTypeCode)

	none, err := s.ListDocuments(ctx, DocumentFilter{FilingDate: "2026-02-03"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocuments_UpsertReplaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	require.NoError(t, s.UpsertDocuments(ctx, "2026-02-02", []edinet.DocumentMeta{meta("S100BBB1", "120", "E10001")}))

	updated := meta("S100BBB1", "120", "E10001")
	updated.FilerName = "改名後株式会社"
	require.NoError(t, s.UpsertDocuments(ctx, "2026-02-03", []edinet.DocumentMeta{updated}))

	docs, err := s.ListDocuments(ctx, DocumentFilter{FilingDate: "2026-02-03"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "改名後株式会社", docs[0].FilerName)

	old, err := s.ListDocuments(ctx, DocumentFilter{FilingDate: "2026-02-02"})
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestDocuments_LimitAndOffset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	require.NoError(t, s.UpsertDocuments(ctx, "2026-02-02", []edinet.DocumentMeta{
		meta("S100CCC1", "120", "E1"),
		meta("S100CCC2", "120", "E2"),
		meta("S100CCC3", "120", "E3"),
	}))

	page, err := s.ListDocuments(ctx, DocumentFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "S100CCC2", page[0].DocID)
	assert.Equal(t, "S100CCC3", page[1].DocID)
}

func TestArchiveCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	missing, err := s.GetArchive(ctx, "S100DDD1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	payload := []byte{0x50, 0x4b, 0x03, 0x04, 0x00}
	require.NoError(t, s.PutArchive(ctx, "S100DDD1", payload))

	got, err := s.GetArchive(ctx, "S100DDD1")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Overwrite keeps the latest bytes.
	require.NoError(t, s.PutArchive(ctx, "S100DDD1", []byte("v2")))
	got, err = s.GetArchive(ctx, "S100DDD1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestReports_SaveAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	missing, err := s.GetReport(ctx, "S100EEE1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	data := []byte(`{"doc_id":"S100EEE1"}`)
	require.NoError(t, s.SaveReport(ctx, "S100EEE1", report.KindSecurities, data))

	sr, err := s.GetReport(ctx, "S100EEE1")
	require.NoError(t, err)
	require.NotNil(t, sr)
	assert.Equal(t, "S100EEE1", sr.DocID)
	assert.Equal(t, report.KindSecurities, sr.Kind)
	assert.Equal(t, data, sr.Data)
	assert.False(t, sr.ParsedAt.IsZero())

	// Re-parsing overwrites the kind and payload.
	require.NoError(t, s.SaveReport(ctx, "S100EEE1", report.KindRaw, []byte(`{}`)))
	sr, err = s.GetReport(ctx, "S100EEE1")
	require.NoError(t, err)
	assert.Equal(t, report.KindRaw, sr.Kind)
}

func TestRunLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testStore(t)

	run, err := s.CreateRun(ctx, "2026-02-02", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusRunning, run.Status)
	assert.Equal(t, 10, run.Total)

	require.NoError(t, s.CompleteRun(ctx, run.ID, 8, 2))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, RunStatusComplete, runs[0].Status)
	assert.Equal(t, 8, runs[0].Parsed)
	assert.Equal(t, 2, runs[0].Failed)
}

func TestCompleteRun_UnknownID(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	err := s.CompleteRun(context.Background(), "no-such-run", 0, 0)
	require.Error(t, err)
}
