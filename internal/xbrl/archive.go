package xbrl

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
)

// minColumns is the fixed column count of an EDINET CSV export row.
const minColumns = 9

// auditorPrefix marks auditor-report entries, which duplicate the filer's
// figures under audit contexts and would poison first-match resolution.
const auditorPrefix = "jpaud"

// ExtractArchive decodes an EDINET document archive into per-file row sets.
//
// Non-ZIP input, an empty archive, and archives with no usable entries all
// yield nil. Extraction never fails: unreadable or undecodable entries are
// skipped and their siblings still processed, so downstream always sees a
// valid (possibly empty) result.
func ExtractArchive(data []byte) []SourceFile {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		zap.L().Warn("xbrl: not a zip archive", zap.Error(err))
		return nil
	}

	var files []SourceFile
	for _, entry := range zr.File {
		name := entry.Name
		if !strings.HasSuffix(name, ".csv") {
			continue
		}
		if strings.Contains(name, "__MACOSX") {
			continue
		}
		base := path.Base(name)
		if strings.HasPrefix(base, auditorPrefix) {
			continue
		}

		rows, ok := readEntry(entry)
		if !ok {
			continue
		}
		if len(rows) > 0 {
			files = append(files, SourceFile{Name: base, Rows: rows})
		}
	}
	return files
}

func readEntry(entry *zip.File) ([]RawRow, bool) {
	rc, err := entry.Open()
	if err != nil {
		zap.L().Warn("xbrl: open archive entry", zap.String("entry", entry.Name), zap.Error(err))
		return nil, false
	}
	defer rc.Close() //nolint:errcheck

	raw, err := io.ReadAll(rc)
	if err != nil {
		zap.L().Warn("xbrl: read archive entry", zap.String("entry", entry.Name), zap.Error(err))
		return nil, false
	}

	content, enc, ok := decodeText(raw)
	if !ok {
		zap.L().Warn("xbrl: no usable encoding for entry", zap.String("entry", entry.Name))
		return nil, false
	}
	zap.L().Debug("xbrl: decoded entry",
		zap.String("entry", entry.Name),
		zap.String("encoding", enc),
	)

	return parseRows(content), true
}

// parseRows splits decoded content on tab delimiters. Rows with fewer than
// minColumns cells are dropped; extra cells are ignored.
func parseRows(content string) []RawRow {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(content)))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			zap.L().Warn("xbrl: malformed csv content", zap.Error(err))
			return nil
		}
		if len(record) < minColumns {
			continue
		}
		for i := range record {
			record[i] = cleanCell(record[i])
		}
		rows = append(rows, RawRow{
			ElementID:      record[0],
			Label:          record[1],
			ContextID:      record[2],
			RelativePeriod: record[3],
			Consolidation:  record[4],
			PeriodKind:     record[5],
			UnitID:         record[6],
			UnitScale:      record[7],
			Value:          record[8],
		})
	}
	return rows
}

// cleanCell normalizes one cell: trim, drop null bytes and stray BOMs,
// strip surrounding quote characters.
func cleanCell(v string) string {
	if v == "" {
		return ""
	}
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, "\x00", "")
	v = strings.ReplaceAll(v, "\ufeff", "")
	v = strings.Trim(v, `"`)
	v = strings.Trim(v, `'`)
	return strings.TrimSpace(v)
}
