package parser

import (
	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// rawTable covers only the DEI identity elements shared by every taxonomy.
// The raw builder claims no semantic coverage, so categorization leaves
// unmapped empty and everything stays reachable through RawFields.
var rawTable = fieldTable{
	"edinet_code":     {Element: "jpdei_cor:EDINETCodeDEI"},
	"security_code":   {Element: "jpdei_cor:SecurityCodeDEI"},
	"company_name":    {Element: "jpdei_cor:FilerNameInJapaneseDEI"},
	"company_name_en": {Element: "jpdei_cor:FilerNameInEnglishDEI"},
}

func buildRaw(doc Document, files []xbrl.SourceFile) report.Parsed {
	if len(files) == 0 {
		return &report.Raw{
			Report:         emptyCommon(doc),
			DocDescription: doc.Description(),
		}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: rawTable}

	buckets := xbrl.Categorize(files, nil)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}

	return &report.Raw{
		Report: report.Report{
			DocID:          doc.DocID(),
			DocTypeCode:    doc.DocTypeCode(),
			SourceFiles:    names,
			RawFields:      buckets.Raw,
			TextBlocks:     buckets.TextBlocks,
			UnmappedFields: map[string]string{},
		},

		FilerName:       coalesce(e.dei("company_name"), doc.FilerName()),
		FilerNameEN:     e.dei("company_name_en"),
		FilerEDINETCode: coalesce(e.dei("edinet_code"), doc.FilerEDINETCode()),
		Ticker:          formatTicker(e.dei("security_code")),
		DocDescription:  doc.Description(),
	}
}
