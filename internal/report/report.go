// Package report defines the typed records produced from parsed EDINET
// filings: one variant per document type plus an untyped fallback, all
// sharing a common core of identity and completeness fields.
package report

// Kind identifies the closed set of report variants.
type Kind string

const (
	KindLargeHolding  Kind = "large_holding"
	KindSecurities    Kind = "securities"
	KindQuarterly     Kind = "quarterly"
	KindSemiAnnual    Kind = "semi_annual"
	KindExtraordinary Kind = "extraordinary"
	KindTreasuryStock Kind = "treasury_stock"
	KindRaw           Kind = "raw"
)

// Report carries the fields every parsed document has regardless of type.
// A report is constructed once per parse and never mutated afterwards; it
// holds no reference back into the archive bytes it came from.
//
// RawFields is the completeness guarantee: every element id observed in
// the archive appears there, whether or not a typed field consumed it.
// TextBlocks holds narrative elements and UnmappedFields everything the
// active field table did not cover; the two never share a key.
type Report struct {
	DocID          string            `json:"doc_id" yaml:"doc_id"`
	DocTypeCode    string            `json:"doc_type_code" yaml:"doc_type_code"`
	SourceFiles    []string          `json:"source_files" yaml:"source_files"`
	RawFields      map[string]string `json:"raw_fields" yaml:"raw_fields"`
	TextBlocks     map[string]string `json:"text_blocks" yaml:"text_blocks"`
	UnmappedFields map[string]string `json:"unmapped_fields" yaml:"unmapped_fields"`
}

// Common returns the shared core of any variant.
func (r *Report) Common() *Report { return r }

// Parsed is the closed interface over the report variants. Every value
// returned by the parser implements it.
type Parsed interface {
	Common() *Report
	Kind() Kind
}

// FilerIdentified is implemented by variants that carry a filer EDINET
// code, the identity key an entity registry resolves against.
type FilerIdentified interface {
	FilerCode() string
}
