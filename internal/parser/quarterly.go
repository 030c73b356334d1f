package parser

import (
	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// Field table for quarterly reports (doc type 140). Income statement and
// cash flow elements carry year-to-date cumulative values under
// CurrentYTDDuration contexts; balance sheet elements are instants.
var quarterlyTable = fieldTable{
	"edinet_code":     {Element: "jpdei_cor:EDINETCodeDEI"},
	"security_code":   {Element: "jpdei_cor:SecurityCodeDEI"},
	"company_name":    {Element: "jpdei_cor:FilerNameInJapaneseDEI"},
	"fiscal_year_end": {Element: "jpdei_cor:CurrentFiscalYearEndDateDEI"},
	"filing_date":     {Element: "jpcrp_cor:FilingDateCoverPage"},
	"is_consolidated": {Element: "jpdei_cor:WhetherConsolidatedFinancialStatementsArePreparedDEI"},

	"revenue_ytd":          {Element: "jppfs_cor:NetSales"},
	"operating_profit_ytd": {Element: "jppfs_cor:OperatingIncome"},
	"ordinary_profit_ytd":  {Element: "jppfs_cor:OrdinaryIncome"},
	"net_income_ytd":       {Element: "jppfs_cor:ProfitLossAttributableToOwnersOfParent"},

	"total_assets":      {Element: "jppfs_cor:Assets"},
	"net_assets":        {Element: "jppfs_cor:NetAssets"},
	"total_liabilities": {Element: "jppfs_cor:Liabilities"},

	// Quarterly filings report cash flows through the business-results
	// summary, not the statement elements.
	"operating_cf_ytd": {Element: "jpcrp_cor:NetCashProvidedByUsedInOperatingActivitiesSummaryOfBusinessResults"},
	"investing_cf_ytd": {Element: "jpcrp_cor:NetCashProvidedByUsedInInvestingActivitiesSummaryOfBusinessResults"},
	"financing_cf_ytd": {Element: "jpcrp_cor:NetCashProvidedByUsedInFinancingActivitiesSummaryOfBusinessResults"},

	"eps_basic_ytd": {Element: "jpcrp_cor:BasicEarningsLossPerShareSummaryOfBusinessResults"},
	"equity_ratio":  {Element: "jpcrp_cor:EquityToAssetRatioSummaryOfBusinessResults"},
}

// Ordinary profit and the summary cash flows have no IFRS counterpart.
var quarterlyIFRS = map[string]string{
	"jppfs_cor:NetSales":                               "jpigp_cor:RevenueIFRS",
	"jppfs_cor:OperatingIncome":                        "jpigp_cor:OperatingProfitLossIFRS",
	"jppfs_cor:ProfitLossAttributableToOwnersOfParent": "jpigp_cor:ProfitLossAttributableToOwnersOfParentIFRS",
	"jppfs_cor:Assets":                                 "jpigp_cor:AssetsIFRS",
	"jppfs_cor:NetAssets":                              "jpigp_cor:EquityIFRS",
	"jppfs_cor:Liabilities":                            "jpigp_cor:LiabilitiesIFRS",
}

func buildQuarterly(doc Document, files []xbrl.SourceFile) report.Parsed {
	if len(files) == 0 {
		return &report.Quarterly{Report: emptyCommon(doc), IsConsolidated: true}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: quarterlyTable, ifrs: quarterlyIFRS}

	// Quarterly filers are overwhelmingly consolidated; treat an absent
	// DEI flag as consolidated. Anything other than an exact "true" is
	// non-consolidated.
	isConsolidatedRaw := e.dei("is_consolidated")
	isConsolidated := isConsolidatedRaw == "true" || isConsolidatedRaw == ""

	fiscalYearEnd := xbrl.ParseDate(e.dei("fiscal_year_end"))

	filingDate := xbrl.ParseDate(e.get("filing_date"))
	if filingDate == nil {
		if ft := doc.FilingTime(); ft != nil {
			d := dateOf(*ft)
			filingDate = &d
		}
	}

	var quarterNumber *int
	if filingDate != nil && fiscalYearEnd != nil {
		quarterNumber = deriveQuarter(*filingDate, *fiscalYearEnd)
	}

	epsPatterns := xbrl.ContextPatterns(isConsolidated, "CurrentYTDDuration")
	ratioPatterns := xbrl.ContextPatterns(isConsolidated, "CurrentQuarterInstant")

	return &report.Quarterly{
		Report: newCommon(doc, files, quarterlyTable),

		FilerName:       coalesce(e.dei("company_name"), doc.FilerName()),
		FilerEDINETCode: coalesce(e.dei("edinet_code"), doc.FilerEDINETCode()),
		Ticker:          formatTicker(e.dei("security_code")),
		IsConsolidated:  isConsolidated,

		FiscalYearEnd: fiscalYearEnd,
		QuarterNumber: quarterNumber,
		FilingDate:    filingDate,

		RevenueYTD:         e.fin("revenue_ytd", "CurrentYTDDuration", isConsolidated),
		OperatingProfitYTD: e.fin("operating_profit_ytd", "CurrentYTDDuration", isConsolidated),
		OrdinaryProfitYTD:  e.fin("ordinary_profit_ytd", "CurrentYTDDuration", isConsolidated),
		NetIncomeYTD:       e.fin("net_income_ytd", "CurrentYTDDuration", isConsolidated),

		PriorRevenueYTD:         e.fin("revenue_ytd", "Prior1YTDDuration", isConsolidated),
		PriorOperatingProfitYTD: e.fin("operating_profit_ytd", "Prior1YTDDuration", isConsolidated),
		PriorOrdinaryProfitYTD:  e.fin("ordinary_profit_ytd", "Prior1YTDDuration", isConsolidated),
		PriorNetIncomeYTD:       e.fin("net_income_ytd", "Prior1YTDDuration", isConsolidated),

		TotalAssets:      e.fin("total_assets", "CurrentQuarterInstant", isConsolidated),
		NetAssets:        e.fin("net_assets", "CurrentQuarterInstant", isConsolidated),
		TotalLiabilities: e.fin("total_liabilities", "CurrentQuarterInstant", isConsolidated),

		OperatingCashFlowYTD: e.fin("operating_cf_ytd", "CurrentYTDDuration", isConsolidated),
		InvestingCashFlowYTD: e.fin("investing_cf_ytd", "CurrentYTDDuration", isConsolidated),
		FinancingCashFlowYTD: e.fin("financing_cf_ytd", "CurrentYTDDuration", isConsolidated),

		EPSBasicYTD: xbrl.ParseDecimal(e.ctx("eps_basic_ytd", epsPatterns)),
		EquityRatio: xbrl.ParsePercent(e.ctx("equity_ratio", ratioPatterns)),
	}
}
