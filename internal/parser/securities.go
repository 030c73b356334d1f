package parser

import (
	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// Field table for annual securities reports (doc type 120), spanning the
// jpdei_cor, jpcrp_cor, and jppfs_cor taxonomies. Summary-of-business-
// results elements are preferred with the financial-statement elements as
// fallback: the summary section is normalized across filers while the
// statement section mirrors each filer's own chart of accounts.
var securitiesTable = fieldTable{
	"edinet_code":         {Element: "jpdei_cor:EDINETCodeDEI"},
	"security_code":       {Element: "jpdei_cor:SecurityCodeDEI"},
	"company_name":        {Element: "jpdei_cor:FilerNameInJapaneseDEI"},
	"company_name_en":     {Element: "jpdei_cor:FilerNameInEnglishDEI"},
	"fiscal_year_start":   {Element: "jpdei_cor:CurrentFiscalYearStartDateDEI"},
	"fiscal_year_end":     {Element: "jpdei_cor:CurrentFiscalYearEndDateDEI"},
	"accounting_standard": {Element: "jpdei_cor:AccountingStandardsDEI"},
	"is_consolidated":     {Element: "jpdei_cor:WhetherConsolidatedFinancialStatementsArePreparedDEI"},

	"net_sales_summary":       {Element: "jpcrp_cor:NetSalesSummaryOfBusinessResults"},
	"ordinary_income_summary": {Element: "jpcrp_cor:OrdinaryIncomeLossSummaryOfBusinessResults"},
	"net_income_summary":      {Element: "jpcrp_cor:ProfitLossAttributableToOwnersOfParentSummaryOfBusinessResults"},
	"total_assets_summary":    {Element: "jpcrp_cor:TotalAssetsSummaryOfBusinessResults"},
	"net_assets_summary":      {Element: "jpcrp_cor:NetAssetsSummaryOfBusinessResults"},
	"net_assets_per_share":    {Element: "jpcrp_cor:NetAssetsPerShareSummaryOfBusinessResults"},
	"earnings_per_share":      {Element: "jpcrp_cor:BasicEarningsLossPerShareSummaryOfBusinessResults"},
	"equity_ratio":            {Element: "jpcrp_cor:EquityToAssetRatioSummaryOfBusinessResults"},
	"roe":                     {Element: "jpcrp_cor:RateOfReturnOnEquitySummaryOfBusinessResults"},
	"operating_cf_summary":    {Element: "jpcrp_cor:NetCashProvidedByUsedInOperatingActivitiesSummaryOfBusinessResults"},
	"investing_cf_summary":    {Element: "jpcrp_cor:NetCashProvidedByUsedInInvestingActivitiesSummaryOfBusinessResults"},
	"financing_cf_summary":    {Element: "jpcrp_cor:NetCashProvidedByUsedInFinancingActivitiesSummaryOfBusinessResults"},

	"net_sales_fs":         {Element: "jppfs_cor:NetSales"},
	"operating_income_fs":  {Element: "jppfs_cor:OperatingIncome"},
	"ordinary_income_fs":   {Element: "jppfs_cor:OrdinaryIncome"},
	"net_income_fs":        {Element: "jppfs_cor:ProfitLoss"},
	"total_assets_fs":      {Element: "jppfs_cor:Assets"},
	"net_assets_fs":        {Element: "jppfs_cor:NetAssets"},
	"total_liabilities_fs": {Element: "jppfs_cor:Liabilities"},

	"short_term_loans_payable":                {Element: "jppfs_cor:ShortTermLoansPayable"},
	"long_term_loans_payable":                 {Element: "jppfs_cor:LongTermLoansPayable"},
	"bonds_payable":                           {Element: "jppfs_cor:BondsPayable"},
	"current_portion_long_term_loans_payable": {Element: "jppfs_cor:CurrentPortionOfLongTermLoansPayable"},
	"lease_obligations_current":               {Element: "jppfs_cor:LeaseObligationsCL"},
	"lease_obligations_noncurrent":            {Element: "jppfs_cor:LeaseObligationsNCL"},
	"commercial_paper":                        {Element: "jppfs_cor:CommercialPaper"},

	"operating_cf_cfs": {Element: "jpcrp_cor:CashFlowsFromOperatingActivities"},
	"investing_cf_cfs": {Element: "jpcrp_cor:CashFlowsFromInvestmentActivities"},
	"financing_cf_cfs": {Element: "jpcrp_cor:CashFlowsFromFinancingActivities"},

	"operating_cf_ifrs_summary": {Element: "jpcrp_cor:CashFlowsFromUsedInOperatingActivitiesIFRSSummaryOfBusinessResults"},
	"investing_cf_ifrs_summary": {Element: "jpcrp_cor:CashFlowsFromUsedInInvestingActivitiesIFRSSummaryOfBusinessResults"},
	"financing_cf_ifrs_summary": {Element: "jpcrp_cor:CashFlowsFromUsedInFinancingActivitiesIFRSSummaryOfBusinessResults"},
	"operating_cf_ifrs":         {Element: "jpigp_cor:NetCashProvidedByUsedInOperatingActivitiesIFRS"},
	"investing_cf_ifrs":         {Element: "jpigp_cor:NetCashProvidedByUsedInInvestingActivitiesIFRS"},
	"financing_cf_ifrs":         {Element: "jpigp_cor:NetCashProvidedByUsedInFinancingActivitiesIFRS"},

	"num_employees": {Element: "jpcrp_cor:NumberOfEmployees"},
}

// IFRS-equivalent element ids for filers reporting under the jpigp_cor
// taxonomy instead of Japanese GAAP.
var securitiesIFRS = map[string]string{
	"jppfs_cor:NetSales":        "jpigp_cor:RevenueIFRS",
	"jppfs_cor:OperatingIncome": "jpigp_cor:OperatingProfitLossIFRS",
	"jppfs_cor:OrdinaryIncome":  "jpigp_cor:ProfitLossBeforeTaxIFRS",
	"jppfs_cor:ProfitLoss":      "jpigp_cor:ProfitLossIFRS",
	"jppfs_cor:Assets":          "jpigp_cor:AssetsIFRS",
	"jppfs_cor:NetAssets":       "jpigp_cor:EquityIFRS",
	"jppfs_cor:Liabilities":     "jpigp_cor:LiabilitiesIFRS",

	"jppfs_cor:ShortTermLoansPayable": "jpigp_cor:ShortTermBorrowingsIFRS",
	"jppfs_cor:LongTermLoansPayable":  "jpigp_cor:LongTermBorrowingsIFRS",
	"jppfs_cor:BondsPayable":          "jpigp_cor:BondsPayableIFRS",
}

func buildSecurities(doc Document, files []xbrl.SourceFile) report.Parsed {
	if len(files) == 0 {
		return &report.Securities{Report: emptyCommon(doc)}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: securitiesTable, ifrs: securitiesIFRS}

	isConsolidatedRaw := e.dei("is_consolidated")
	isConsolidated := isConsolidatedRaw == "true" || isConsolidatedRaw == ""

	navPatterns := xbrl.ContextPatterns(isConsolidated, "CurrentYearInstant")
	epsPatterns := xbrl.ContextPatterns(isConsolidated, "CurrentYearDuration")

	return &report.Securities{
		Report: newCommon(doc, files, securitiesTable),

		FilerName:          coalesce(e.dei("company_name"), doc.FilerName()),
		FilerNameEN:        e.dei("company_name_en"),
		FilerEDINETCode:    coalesce(e.dei("edinet_code"), doc.FilerEDINETCode()),
		Ticker:             formatTicker(e.dei("security_code")),
		AccountingStandard: e.dei("accounting_standard"),
		IsConsolidated:     isConsolidated,

		FiscalYearStart: xbrl.ParseDate(e.dei("fiscal_year_start")),
		FiscalYearEnd:   xbrl.ParseDate(e.dei("fiscal_year_end")),

		NetSales: coalesceInt(
			e.fin("net_sales_summary", "CurrentYearDuration", isConsolidated),
			e.fin("net_sales_fs", "CurrentYearDuration", isConsolidated),
		),
		OperatingIncome: e.fin("operating_income_fs", "CurrentYearDuration", isConsolidated),
		OrdinaryIncome: coalesceInt(
			e.fin("ordinary_income_summary", "CurrentYearDuration", isConsolidated),
			e.fin("ordinary_income_fs", "CurrentYearDuration", isConsolidated),
		),
		NetIncome: coalesceInt(
			e.fin("net_income_summary", "CurrentYearDuration", isConsolidated),
			e.fin("net_income_fs", "CurrentYearDuration", isConsolidated),
		),

		PriorNetSales: coalesceInt(
			e.fin("net_sales_summary", "Prior1YearDuration", isConsolidated),
			e.fin("net_sales_fs", "Prior1YearDuration", isConsolidated),
		),
		PriorOperatingIncome: e.fin("operating_income_fs", "Prior1YearDuration", isConsolidated),
		PriorOrdinaryIncome: coalesceInt(
			e.fin("ordinary_income_summary", "Prior1YearDuration", isConsolidated),
			e.fin("ordinary_income_fs", "Prior1YearDuration", isConsolidated),
		),
		PriorNetIncome: coalesceInt(
			e.fin("net_income_summary", "Prior1YearDuration", isConsolidated),
			e.fin("net_income_fs", "Prior1YearDuration", isConsolidated),
		),

		TotalAssets: coalesceInt(
			e.fin("total_assets_summary", "CurrentYearInstant", isConsolidated),
			e.fin("total_assets_fs", "CurrentYearInstant", isConsolidated),
		),
		NetAssets: coalesceInt(
			e.fin("net_assets_summary", "CurrentYearInstant", isConsolidated),
			e.fin("net_assets_fs", "CurrentYearInstant", isConsolidated),
		),
		TotalLiabilities: e.fin("total_liabilities_fs", "CurrentYearInstant", isConsolidated),

		ShortTermLoansPayable:       e.fin("short_term_loans_payable", "CurrentYearInstant", isConsolidated),
		LongTermLoansPayable:        e.fin("long_term_loans_payable", "CurrentYearInstant", isConsolidated),
		BondsPayable:                e.fin("bonds_payable", "CurrentYearInstant", isConsolidated),
		CurrentPortionLongTermLoans: e.fin("current_portion_long_term_loans_payable", "CurrentYearInstant", isConsolidated),
		LeaseObligationsCurrent:     e.fin("lease_obligations_current", "CurrentYearInstant", isConsolidated),
		LeaseObligationsNoncurrent:  e.fin("lease_obligations_noncurrent", "CurrentYearInstant", isConsolidated),
		CommercialPaper:             e.fin("commercial_paper", "CurrentYearInstant", isConsolidated),

		// Cash flow falls through four tiers: GAAP summary, IFRS summary,
		// GAAP statement, IFRS statement.
		OperatingCashFlow: coalesceInt(
			e.fin("operating_cf_summary", "CurrentYearDuration", isConsolidated),
			e.fin("operating_cf_ifrs_summary", "CurrentYearDuration", isConsolidated),
			e.fin("operating_cf_cfs", "CurrentYearDuration", isConsolidated),
			e.fin("operating_cf_ifrs", "CurrentYearDuration", isConsolidated),
		),
		InvestingCashFlow: coalesceInt(
			e.fin("investing_cf_summary", "CurrentYearDuration", isConsolidated),
			e.fin("investing_cf_ifrs_summary", "CurrentYearDuration", isConsolidated),
			e.fin("investing_cf_cfs", "CurrentYearDuration", isConsolidated),
			e.fin("investing_cf_ifrs", "CurrentYearDuration", isConsolidated),
		),
		FinancingCashFlow: coalesceInt(
			e.fin("financing_cf_summary", "CurrentYearDuration", isConsolidated),
			e.fin("financing_cf_ifrs_summary", "CurrentYearDuration", isConsolidated),
			e.fin("financing_cf_cfs", "CurrentYearDuration", isConsolidated),
			e.fin("financing_cf_ifrs", "CurrentYearDuration", isConsolidated),
		),

		NetAssetsPerShare: xbrl.ParseDecimal(e.ctx("net_assets_per_share", navPatterns)),
		EarningsPerShare:  xbrl.ParseDecimal(e.ctx("earnings_per_share", epsPatterns)),

		EquityRatio: xbrl.ParsePercent(e.ctx("equity_ratio", navPatterns)),
		ROE:         xbrl.ParsePercent(e.ctx("roe", epsPatterns)),

		NumEmployees: e.fin("num_employees", "CurrentYearInstant", isConsolidated),
	}
}
