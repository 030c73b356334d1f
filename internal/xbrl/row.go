// Package xbrl decodes EDINET CSV-export archives and resolves reportable
// elements against context and taxonomy fallbacks.
//
// EDINET delivers each filing as a ZIP of tab-separated files, one row per
// reported fact. The same element id usually appears several times per
// archive: once per reporting context (current vs prior period,
// consolidated vs non-consolidated) and sometimes once per accounting
// taxonomy (Japanese GAAP vs IFRS). This package extracts every row,
// indexes them in file order, and picks the right one per field.
package xbrl

// RawRow is one decoded line of an EDINET CSV export. The column order is
// fixed by the export format; values are cleaned but otherwise untyped.
type RawRow struct {
	ElementID      string `json:"element_id"`      // taxonomy-qualified, e.g. jppfs_cor:NetSales
	Label          string `json:"label"`           // Japanese item name
	ContextID      string `json:"context_id"`      // e.g. CurrentYearDuration_ConsolidatedMember
	RelativePeriod string `json:"relative_period"` // 相対年度
	Consolidation  string `json:"consolidation"`   // 連結・個別
	PeriodKind     string `json:"period_kind"`     // 期間・時点
	UnitID         string `json:"unit_id"`
	UnitScale      string `json:"unit_scale"` // magnitude word, e.g. 千円
	Value          string `json:"value"`
}

// SourceFile is one retained archive entry with its decoded rows.
type SourceFile struct {
	Name string   `json:"name"`
	Rows []RawRow `json:"rows"`
}

// LocalName strips the taxonomy prefix from an element id
// (jpcrp_cor:NetSales -> NetSales).
func LocalName(elementID string) string {
	for i := len(elementID) - 1; i >= 0; i-- {
		if elementID[i] == ':' {
			return elementID[i+1:]
		}
	}
	return elementID
}
