package xbrl

import "strings"

// Index groups extracted rows by element id, preserving file order and
// in-file order. Order matters: field resolution is defined in terms of
// first match (and occasionally last match, for corrected or joint filings
// where a later row supersedes an earlier one).
type Index struct {
	rows  map[string][]RawRow
	files []string
}

// NewIndex builds an Index over the extracted files.
func NewIndex(files []SourceFile) *Index {
	ix := &Index{rows: make(map[string][]RawRow, 256)}
	for _, f := range files {
		ix.files = append(ix.files, f.Name)
		for _, r := range f.Rows {
			ix.rows[r.ElementID] = append(ix.rows[r.ElementID], r)
		}
	}
	return ix
}

// SourceFiles returns the names of the files the index was built from.
func (ix *Index) SourceFiles() []string { return ix.files }

// Empty reports whether the index holds no rows at all.
func (ix *Index) Empty() bool { return len(ix.rows) == 0 }

// Resolve returns the row backing elementID under the given context
// patterns, or nil when the element is absent.
//
// With patterns, each pattern is tried in strict priority order: the first
// row whose context id contains the first satisfiable pattern as a
// substring wins. Without patterns, the first row wins, or the last row
// when last is set.
func (ix *Index) Resolve(elementID string, patterns []string, last bool) *RawRow {
	rows := ix.rows[elementID]
	if len(rows) == 0 {
		return nil
	}

	if len(patterns) > 0 {
		for _, pattern := range patterns {
			for i := range rows {
				if strings.Contains(rows[i].ContextID, pattern) {
					return &rows[i]
				}
			}
		}
		return nil
	}

	if last {
		return &rows[len(rows)-1]
	}
	return &rows[0]
}

// Value is Resolve reduced to the row's value; absent elements yield "".
func (ix *Index) Value(elementID string, patterns []string, last bool) string {
	row := ix.Resolve(elementID, patterns, last)
	if row == nil {
		return ""
	}
	return row.Value
}

// ContextPatterns builds the context priority list for financial
// extraction: the filer's own consolidation mode first, the opposite mode
// second, the bare period last. This ordering is the contract every
// financial field resolves under.
func ContextPatterns(consolidated bool, period string) []string {
	if consolidated {
		return []string{
			period + "_ConsolidatedMember",
			period + "_NonConsolidatedMember",
			period,
		}
	}
	return []string{
		period + "_NonConsolidatedMember",
		period + "_ConsolidatedMember",
		period,
	}
}

// Financial resolves a numeric financial fact through the two-tier
// fallback: context priority against the primary element id, then the same
// context priority against the element's registered IFRS equivalent when
// the primary yields nothing. The unit-scale multiplier of the winning row
// is applied to the coerced value.
// A primary row holding a placeholder dash counts as resolved-but-null and
// does not fall through to IFRS: the filer reported the concept as not
// applicable under its own taxonomy.
func (ix *Index) Financial(elementID, period string, consolidated bool, ifrsFallback map[string]string) *int64 {
	patterns := ContextPatterns(consolidated, period)

	if row := ix.Resolve(elementID, patterns, false); row != nil && row.Value != "" {
		return scaledInt(row)
	}
	if alt, ok := ifrsFallback[elementID]; ok {
		if row := ix.Resolve(alt, patterns, false); row != nil && row.Value != "" {
			return scaledInt(row)
		}
	}
	return nil
}

// FinancialFirst resolves a numeric fact without context filtering: the
// first row for the element wins, with the same taxonomy fallback as
// Financial. Semi-annual filings report one context per concept, so
// context priority buys nothing there.
func (ix *Index) FinancialFirst(elementID string, ifrsFallback map[string]string) *int64 {
	if row := ix.Resolve(elementID, nil, false); row != nil && row.Value != "" {
		return scaledInt(row)
	}
	if alt, ok := ifrsFallback[elementID]; ok {
		if row := ix.Resolve(alt, nil, false); row != nil && row.Value != "" {
			return scaledInt(row)
		}
	}
	return nil
}

func scaledInt(row *RawRow) *int64 {
	n := ParseInt(row.Value)
	if n == nil {
		return nil
	}
	scaled := *n * UnitScale(row.UnitScale)
	return &scaled
}
