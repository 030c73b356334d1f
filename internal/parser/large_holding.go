package parser

import (
	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// Field table for large shareholding reports (doc type 350), validated
// against the jplvh_cor taxonomy. Raw values are stored faithfully with no
// interpretation: percentages stay as reported decimals, text stays as-is.
//
// shares_held and ownership_pct use last-row-wins: joint filings repeat
// the element per holder and close with the combined total.
var largeHoldingTable = fieldTable{
	"report_indication": {Element: "jplvh_cor:DocumentTitleCoverPage"},

	"filer_edinet_code": {Element: "jplvh_cor:EDINETCodeDEI"},
	"filer_name_alt1":   {Element: "jplvh_cor:Name"},
	"filer_name_alt2":   {Element: "jplvh_cor:FilerNameInJapaneseDEI"},
	"filer_name_en":     {Element: "jplvh_cor:FilerNameInEnglishDEI"},
	"filer_address":     {Element: "jplvh_cor:ResidentialAddressOrAddressOfRegisteredHeadquarter"},
	"filer_business":    {Element: "jplvh_cor:DescriptionOfBusiness"},
	"filer_type":        {Element: "jplvh_cor:IndividualOrCorporation"},

	"target_company": {Element: "jplvh_cor:NameOfIssuer"},
	"target_ticker":  {Element: "jplvh_cor:SecurityCodeOfIssuer"},

	"shares_held":         {Element: "jplvh_cor:TotalNumberOfStocksEtcHeld", Last: true},
	"ownership_pct":       {Element: "jplvh_cor:HoldingRatioOfShareCertificatesEtc", Last: true},
	"prior_ownership_pct": {Element: "jplvh_cor:HoldingRatioOfShareCertificatesEtcPerLastReport"},
	"shares_outstanding":  {Element: "jplvh_cor:TotalNumberOfOutstandingStocksEtc"},

	"purpose":            {Element: "jplvh_cor:PurposeOfHolding"},
	"important_proposal": {Element: "jplvh_cor:ActOfMakingImportantProposalEtc"},

	"change_reason": {Element: "jplvh_cor:ReasonForFilingChangeReportCoverPage"},

	"filing_date":  {Element: "jplvh_cor:FilingDateCoverPage"},
	"trigger_date": {Element: "jplvh_cor:DateWhenFilingRequirementAroseCoverPage"},
	"base_date":    {Element: "jplvh_cor:BaseDate"},

	"acquisition_fund_own":       {Element: "jplvh_cor:AmountOfOwnFund"},
	"acquisition_fund_borrowing": {Element: "jplvh_cor:TotalAmountOfBorrowings"},
	"acquisition_fund_other":     {Element: "jplvh_cor:TotalAmountFromOtherSources"},
	"acquisition_fund_total":     {Element: "jplvh_cor:TotalAmountOfFundingForAcquisition"},
}

func buildLargeHolding(doc Document, files []xbrl.SourceFile) report.Parsed {
	if len(files) == 0 {
		return &report.LargeHolding{Report: emptyCommon(doc)}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: largeHoldingTable}

	ownershipPct := xbrl.ParsePercent(e.get("ownership_pct"))
	priorOwnershipPct := xbrl.ParsePercent(e.get("prior_ownership_pct"))

	r := &report.LargeHolding{
		Report: newCommon(doc, files, largeHoldingTable),

		ReportIndication: e.get("report_indication"),
		ChangeReason:     e.get("change_reason"),

		FilerName:       coalesce(e.get("filer_name_alt1"), e.get("filer_name_alt2"), doc.FilerName()),
		FilerNameEN:     e.get("filer_name_en"),
		FilerEDINETCode: coalesce(e.get("filer_edinet_code"), doc.FilerEDINETCode()),
		FilerAddress:    e.get("filer_address"),
		FilerType:       e.get("filer_type"),
		FilerBusiness:   e.get("filer_business"),

		TargetCompany: e.get("target_company"),
		TargetTicker:  formatTicker(e.get("target_ticker")),

		SharesHeld:        xbrl.ParseInt(e.get("shares_held")),
		OwnershipPct:      ownershipPct,
		PriorOwnershipPct: priorOwnershipPct,
		SharesOutstanding: xbrl.ParseInt(e.get("shares_outstanding")),

		Purpose:           e.get("purpose"),
		ImportantProposal: e.get("important_proposal"),

		FilingDate:  xbrl.ParseDate(e.get("filing_date")),
		TriggerDate: xbrl.ParseDate(e.get("trigger_date")),
		BaseDate:    xbrl.ParseDate(e.get("base_date")),

		AcquisitionFundOwn:       xbrl.ParseInt(e.get("acquisition_fund_own")),
		AcquisitionFundBorrowing: xbrl.ParseInt(e.get("acquisition_fund_borrowing")),
		AcquisitionFundOther:     xbrl.ParseInt(e.get("acquisition_fund_other")),
		AcquisitionFundTotal:     xbrl.ParseInt(e.get("acquisition_fund_total")),
	}

	if ownershipPct != nil && priorOwnershipPct != nil {
		change := ownershipPct.Sub(*priorOwnershipPct)
		r.OwnershipChange = &change
	}

	if r.FilingDate == nil {
		if ft := doc.FilingTime(); ft != nil {
			d := dateOf(*ft)
			r.FilingDate = &d
		}
	}

	return r
}
