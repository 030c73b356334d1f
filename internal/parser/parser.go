// Package parser turns fetched EDINET document archives into typed
// reports. Each known document type has a builder owning a static field
// table; unknown types fall back to an untyped raw builder. Parsing is
// total: malformed archives, absent elements, and unparseable values
// degrade to empty collections and nil fields, never to an error.
package parser

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// Document is the collaborator a builder consumes: something that can
// produce the archive bytes plus best-effort identity fallbacks used when
// the archive itself omits them.
type Document interface {
	Fetch(ctx context.Context) ([]byte, error)
	DocID() string
	DocTypeCode() string
	FilerName() string
	FilerEDINETCode() string
	FilingTime() *time.Time
	Description() string
}

type builderFunc func(Document, []xbrl.SourceFile) report.Parsed

// builders is the total dispatch table. Codes absent here are handled by
// buildRaw; there is no implicit branch.
var builders = map[string]builderFunc{
	"120": buildSecurities,
	"140": buildQuarterly,
	"160": buildSemiAnnual,
	"180": buildExtraordinary,
	"220": buildTreasuryStock,
	"230": buildTreasuryStock,
	"350": buildLargeHolding,
}

// Parse fetches and parses any document. The result always carries the
// document's id and type code; a fetch failure or unusable archive yields
// a minimally populated report rather than an error.
//
// Builders share no mutable state, so independent documents may be parsed
// concurrently by the caller.
func Parse(ctx context.Context, doc Document) report.Parsed {
	data, err := doc.Fetch(ctx)
	if err != nil {
		zap.L().Warn("parser: fetch failed, producing minimal report",
			zap.String("doc_id", doc.DocID()),
			zap.Error(err),
		)
		data = nil
	}

	files := xbrl.ExtractArchive(data)

	build, ok := builders[doc.DocTypeCode()]
	if !ok {
		build = buildRaw
	}
	return build(doc, files)
}
