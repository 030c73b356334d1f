package parser

import (
	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// Field table for semi-annual reports (doc type 160). The filer population
// is mostly investment funds under the jpsps_cor taxonomy, with corporate
// filers contributing jppfs_cor facts. Each concept appears under a single
// context, so financial fields resolve first-row with no context priority.
var semiAnnualTable = fieldTable{
	"edinet_code":  {Element: "jpdei_cor:EDINETCodeDEI"},
	"company_name": {Element: "jpdei_cor:FilerNameInJapaneseDEI"},
	"fund_code":    {Element: "jpdei_cor:FundCodeDEI"},
	"fund_name":    {Element: "jpdei_cor:FundNameInJapaneseDEI"},

	"period_start": {Element: "jpdei_cor:CurrentFiscalYearStartDateDEI"},
	"period_end":   {Element: "jpdei_cor:CurrentPeriodEndDateDEI"},
	"filing_date":  {Element: "jpdei_cor:DateOfSubmissionDEI"},

	"total_assets":        {Element: "jppfs_cor:Assets"},
	"current_assets":      {Element: "jppfs_cor:CurrentAssets"},
	"total_liabilities":   {Element: "jppfs_cor:Liabilities"},
	"current_liabilities": {Element: "jppfs_cor:CurrentLiabilities"},
	"net_assets":          {Element: "jppfs_cor:NetAssets"},

	"operating_income": {Element: "jppfs_cor:OperatingIncome"},
	"ordinary_income":  {Element: "jppfs_cor:OrdinaryIncome"},
	"profit_loss":      {Element: "jppfs_cor:ProfitLoss"},
}

var semiAnnualIFRS = map[string]string{
	"jppfs_cor:Assets":             "jpigp_cor:AssetsIFRS",
	"jppfs_cor:CurrentAssets":      "jpigp_cor:CurrentAssetsIFRS",
	"jppfs_cor:Liabilities":        "jpigp_cor:LiabilitiesIFRS",
	"jppfs_cor:CurrentLiabilities": "jpigp_cor:CurrentLiabilitiesIFRS",
	"jppfs_cor:NetAssets":          "jpigp_cor:EquityIFRS",
	"jppfs_cor:OperatingIncome":    "jpigp_cor:OperatingProfitLossIFRS",
	"jppfs_cor:OrdinaryIncome":     "jpigp_cor:ProfitLossBeforeTaxIFRS",
	"jppfs_cor:ProfitLoss":         "jpigp_cor:ProfitLossIFRS",
}

// finFirst resolves a financial field first-row, no context filtering.
func (e *extractor) finFirst(key string) *int64 {
	spec, ok := e.table[key]
	if !ok || spec.Element == "" {
		return nil
	}
	return e.ix.FinancialFirst(spec.Element, e.ifrs)
}

func buildSemiAnnual(doc Document, files []xbrl.SourceFile) report.Parsed {
	if len(files) == 0 {
		return &report.SemiAnnual{Report: emptyCommon(doc)}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: semiAnnualTable, ifrs: semiAnnualIFRS}

	periodEnd := xbrl.ParseDate(e.dei("period_end"))

	filingDate := xbrl.ParseDate(e.dei("filing_date"))
	if filingDate == nil {
		if ft := doc.FilingTime(); ft != nil {
			d := dateOf(*ft)
			filingDate = &d
		}
	}
	// Fund filings sometimes omit the submission date entirely; the period
	// end is the closest anchor left.
	if filingDate == nil {
		filingDate = periodEnd
	}

	return &report.SemiAnnual{
		Report: newCommon(doc, files, semiAnnualTable),

		FilerName:       coalesce(e.dei("company_name"), doc.FilerName()),
		FilerEDINETCode: coalesce(e.dei("edinet_code"), doc.FilerEDINETCode()),
		FundCode:        e.dei("fund_code"),
		FundName:        e.dei("fund_name"),

		PeriodStart: xbrl.ParseDate(e.dei("period_start")),
		PeriodEnd:   periodEnd,
		FilingDate:  filingDate,

		TotalAssets:        e.finFirst("total_assets"),
		CurrentAssets:      e.finFirst("current_assets"),
		TotalLiabilities:   e.finFirst("total_liabilities"),
		CurrentLiabilities: e.finFirst("current_liabilities"),
		NetAssets:          e.finFirst("net_assets"),

		OperatingIncome: e.finFirst("operating_income"),
		OrdinaryIncome:  e.finFirst("ordinary_income"),
		ProfitLoss:      e.finFirst("profit_loss"),
	}
}
