package parser

import (
	"strings"
	"time"

	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// fieldSpec binds a semantic field to its primary element id. Last selects
// last-row-wins resolution for fields where a later row supersedes an
// earlier one (joint and corrected filings).
type fieldSpec struct {
	Element string
	Last    bool
}

// fieldTable is a builder's static field map: semantic name -> spec.
// Tables are read-only package data; builders never mutate them.
type fieldTable map[string]fieldSpec

func (t fieldTable) elementSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t))
	for _, spec := range t {
		set[spec.Element] = struct{}{}
	}
	return set
}

// deiContext selects Document and Entity Information facts, which are
// reported against the filing-date instant rather than a fiscal period.
var deiContext = []string{"FilingDateInstant"}

// extractor bundles the index, field table, and taxonomy fallback map a
// builder resolves against.
type extractor struct {
	ix    *xbrl.Index
	table fieldTable
	ifrs  map[string]string
}

// get resolves a field with no context filtering, honoring the field's
// first/last policy.
func (e *extractor) get(key string) string {
	spec := e.table[key]
	return e.ix.Value(spec.Element, nil, spec.Last)
}

// dei resolves a field against the filing-date instant context.
func (e *extractor) dei(key string) string {
	return e.ix.Value(e.table[key].Element, deiContext, false)
}

// ctx resolves a field under an explicit context priority list.
func (e *extractor) ctx(key string, patterns []string) string {
	return e.ix.Value(e.table[key].Element, patterns, false)
}

// fin resolves a financial field through the context-priority and
// IFRS-fallback algorithm.
func (e *extractor) fin(key, period string, consolidated bool) *int64 {
	spec, ok := e.table[key]
	if !ok || spec.Element == "" {
		return nil
	}
	return e.ix.Financial(spec.Element, period, consolidated, e.ifrs)
}

// emptyCommon is the minimal report core for archives with no usable rows:
// identity only, every collection empty but non-nil.
func emptyCommon(doc Document) report.Report {
	return report.Report{
		DocID:          doc.DocID(),
		DocTypeCode:    doc.DocTypeCode(),
		SourceFiles:    []string{},
		RawFields:      map[string]string{},
		TextBlocks:     map[string]string{},
		UnmappedFields: map[string]string{},
	}
}

// newCommon builds the shared report core: identity, source file names,
// and the completeness buckets over everything observed.
func newCommon(doc Document, files []xbrl.SourceFile, table fieldTable) report.Report {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	buckets := xbrl.Categorize(files, table.elementSet())
	return report.Report{
		DocID:          doc.DocID(),
		DocTypeCode:    doc.DocTypeCode(),
		SourceFiles:    names,
		RawFields:      buckets.Raw,
		TextBlocks:     buckets.TextBlocks,
		UnmappedFields: buckets.Unmapped,
	}
}

// formatTicker normalizes a raw securities code to ticker form. Listed
// codes come as 4 or 5 digits; 5-digit codes carry a spurious trailing
// zero which is dropped. Placeholder values yield "".
func formatTicker(securityCode string) string {
	code := strings.TrimSpace(securityCode)
	if code == "" || code == "－" {
		return ""
	}
	if len(code) == 5 && strings.HasSuffix(code, "0") {
		code = code[:4]
	}
	return code + ".T"
}

// deriveQuarter maps a filing date to a quarter number via months elapsed
// since fiscal year start. Quarterly reports are filed on a fixed lag
// after quarter close, so the buckets are offset from the quarter itself:
// [3,5] months -> Q1, [6,8] -> Q2, [9,11] -> Q3.
//
// The DEI fiscal-year-end can describe either the current or the just
// closed fiscal year; a filing dated after the stated year end is assigned
// to the following year. Offsets outside the buckets (misfiled amendments,
// annual reports) yield nil; that ambiguity is deliberate.
func deriveQuarter(filingDate, fiscalYearEnd time.Time) *int {
	start := fiscalYearEnd.AddDate(-1, 0, 1)
	if filingDate.After(fiscalYearEnd) {
		start = fiscalYearEnd.AddDate(0, 0, 1)
	}

	months := (filingDate.Year()-start.Year())*12 + int(filingDate.Month()) - int(start.Month())

	var q int
	switch {
	case months >= 3 && months <= 5:
		q = 1
	case months >= 6 && months <= 8:
		q = 2
	case months >= 9 && months <= 11:
		q = 3
	default:
		return nil
	}
	return &q
}

// dateOf truncates a timestamp to its date, midnight UTC, matching the
// precision of archive-reported dates.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// coalesce returns the first non-empty value.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// coalesceInt returns the first non-nil value.
func coalesceInt(values ...*int64) *int64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
