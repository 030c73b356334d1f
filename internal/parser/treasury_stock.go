package parser

import (
	"strings"

	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// defaultTreasuryTitle is the statutory document title; filers rarely
// repeat it on the cover page.
const defaultTreasuryTitle = "自己株券買付状況報告書"

// Field table for treasury stock purchase status reports (doc types 220
// and 230). The buyback numbers themselves live in narrative text blocks;
// the structured facts cover identity and authorization only.
var treasuryStockTable = fieldTable{
	"edinet_code":   {Element: "jpdei_cor:EDINETCodeDEI"},
	"security_code": {Element: "jpdei_cor:SecurityCodeDEI"},

	"title":            {Element: "jpcrp-sbr_cor:DocumentTitleCoverPage"},
	"company_name":     {Element: "jpcrp-sbr_cor:CompanyNameCoverPage"},
	"company_name_en":  {Element: "jpcrp-sbr_cor:CompanyNameInEnglishCoverPage"},
	"filing_date":      {Element: "jpcrp-sbr_cor:FilingDateCoverPage"},
	"representative":   {Element: "jpcrp-sbr_cor:TitleAndNameOfRepresentativeCoverPage"},
	"address":          {Element: "jpcrp-sbr_cor:AddressOfRegisteredHeadquarterCoverPage"},
	"reporting_period": {Element: "jpcrp-sbr_cor:ReportingPeriodCoverPage"},

	"by_shareholders_meeting": {Element: "jpcrp-sbr_cor:AcquisitionsByResolutionOfShareholdersMeetingTextBlock"},
	"by_board_meeting":        {Element: "jpcrp-sbr_cor:AcquisitionsByResolutionOfBoardOfDirectorsMeetingTextBlock"},
	"disposal_status":         {Element: "jpcrp-sbr_cor:DisposalsOfTreasurySharesTextBlock"},
	"holding_status":          {Element: "jpcrp-sbr_cor:HoldingOfTreasurySharesTextBlock"},
}

func buildTreasuryStock(doc Document, files []xbrl.SourceFile) report.Parsed {
	isAmendment := doc.DocTypeCode() == "230"

	if len(files) == 0 {
		return &report.TreasuryStock{Report: emptyCommon(doc), IsAmendment: isAmendment}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: treasuryStockTable}

	// Disposal and holding are two sections of one narrative; keep both
	// when both are present.
	var disposalHolding []string
	for _, key := range []string{"disposal_status", "holding_status"} {
		if v := e.get(key); v != "" {
			disposalHolding = append(disposalHolding, v)
		}
	}

	r := &report.TreasuryStock{
		Report: newCommon(doc, files, treasuryStockTable),

		FilerName:       coalesce(e.get("company_name"), doc.FilerName()),
		FilerNameEN:     e.get("company_name_en"),
		FilerEDINETCode: coalesce(e.dei("edinet_code"), doc.FilerEDINETCode()),
		Ticker:          formatTicker(e.dei("security_code")),

		DocumentTitle:   coalesce(e.get("title"), defaultTreasuryTitle),
		FilingDate:      xbrl.ParseDate(e.get("filing_date")),
		Representative:  e.get("representative"),
		Address:         e.get("address"),
		ReportingPeriod: e.get("reporting_period"),

		IsAmendment: isAmendment,

		ByShareholdersMeeting: e.get("by_shareholders_meeting"),
		ByBoardMeeting:        e.get("by_board_meeting"),
		DisposalHoldingText:   strings.Join(disposalHolding, "\n"),
	}

	if r.FilingDate == nil {
		if ft := doc.FilingTime(); ft != nil {
			d := dateOf(*ft)
			r.FilingDate = &d
		}
	}

	return r
}
