package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Percentages and ratios throughout these types are fixed-point decimals
// holding the literal reported ratio: 0.0967 means 9.67%. Monetary values
// are yen, already scaled by the unit column.

// LargeHolding is a parsed large shareholding report (doc type 350):
// filed when ownership of a listed company crosses the 5% threshold.
type LargeHolding struct {
	Report `yaml:",inline"`

	ReportIndication string `json:"report_indication,omitempty" yaml:"report_indication,omitempty"`
	ChangeReason     string `json:"change_reason,omitempty" yaml:"change_reason,omitempty"`

	FilerName       string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerNameEN     string `json:"filer_name_en,omitempty" yaml:"filer_name_en,omitempty"`
	FilerEDINETCode string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	FilerAddress    string `json:"filer_address,omitempty" yaml:"filer_address,omitempty"`
	FilerType       string `json:"filer_type,omitempty" yaml:"filer_type,omitempty"` // 法人 or 個人
	FilerBusiness   string `json:"filer_business,omitempty" yaml:"filer_business,omitempty"`

	TargetCompany string `json:"target_company,omitempty" yaml:"target_company,omitempty"`
	TargetTicker  string `json:"target_ticker,omitempty" yaml:"target_ticker,omitempty"`

	SharesHeld        *int64           `json:"shares_held,omitempty" yaml:"shares_held,omitempty"`
	OwnershipPct      *decimal.Decimal `json:"ownership_pct,omitempty" yaml:"ownership_pct,omitempty"`
	PriorOwnershipPct *decimal.Decimal `json:"prior_ownership_pct,omitempty" yaml:"prior_ownership_pct,omitempty"`
	OwnershipChange   *decimal.Decimal `json:"ownership_change,omitempty" yaml:"ownership_change,omitempty"`
	SharesOutstanding *int64           `json:"shares_outstanding,omitempty" yaml:"shares_outstanding,omitempty"`

	Purpose           string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	ImportantProposal string `json:"important_proposal,omitempty" yaml:"important_proposal,omitempty"`

	FilingDate  *time.Time `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`
	TriggerDate *time.Time `json:"trigger_date,omitempty" yaml:"trigger_date,omitempty"`
	BaseDate    *time.Time `json:"base_date,omitempty" yaml:"base_date,omitempty"`

	AcquisitionFundOwn       *int64 `json:"acquisition_fund_own,omitempty" yaml:"acquisition_fund_own,omitempty"`
	AcquisitionFundBorrowing *int64 `json:"acquisition_fund_borrowing,omitempty" yaml:"acquisition_fund_borrowing,omitempty"`
	AcquisitionFundOther     *int64 `json:"acquisition_fund_other,omitempty" yaml:"acquisition_fund_other,omitempty"`
	AcquisitionFundTotal     *int64 `json:"acquisition_fund_total,omitempty" yaml:"acquisition_fund_total,omitempty"`
}

func (*LargeHolding) Kind() Kind          { return KindLargeHolding }
func (r *LargeHolding) FilerCode() string { return r.FilerEDINETCode }

// Securities is a parsed annual securities report (doc type 120).
type Securities struct {
	Report `yaml:",inline"`

	FilerName          string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerNameEN        string `json:"filer_name_en,omitempty" yaml:"filer_name_en,omitempty"`
	FilerEDINETCode    string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	Ticker             string `json:"ticker,omitempty" yaml:"ticker,omitempty"`
	AccountingStandard string `json:"accounting_standard,omitempty" yaml:"accounting_standard,omitempty"`
	IsConsolidated     bool   `json:"is_consolidated" yaml:"is_consolidated"`

	FiscalYearStart *time.Time `json:"fiscal_year_start,omitempty" yaml:"fiscal_year_start,omitempty"`
	FiscalYearEnd   *time.Time `json:"fiscal_year_end,omitempty" yaml:"fiscal_year_end,omitempty"`

	NetSales        *int64 `json:"net_sales,omitempty" yaml:"net_sales,omitempty"`
	OperatingIncome *int64 `json:"operating_income,omitempty" yaml:"operating_income,omitempty"`
	OrdinaryIncome  *int64 `json:"ordinary_income,omitempty" yaml:"ordinary_income,omitempty"`
	NetIncome       *int64 `json:"net_income,omitempty" yaml:"net_income,omitempty"`

	PriorNetSales        *int64 `json:"prior_net_sales,omitempty" yaml:"prior_net_sales,omitempty"`
	PriorOperatingIncome *int64 `json:"prior_operating_income,omitempty" yaml:"prior_operating_income,omitempty"`
	PriorOrdinaryIncome  *int64 `json:"prior_ordinary_income,omitempty" yaml:"prior_ordinary_income,omitempty"`
	PriorNetIncome       *int64 `json:"prior_net_income,omitempty" yaml:"prior_net_income,omitempty"`

	TotalAssets      *int64 `json:"total_assets,omitempty" yaml:"total_assets,omitempty"`
	NetAssets        *int64 `json:"net_assets,omitempty" yaml:"net_assets,omitempty"`
	TotalLiabilities *int64 `json:"total_liabilities,omitempty" yaml:"total_liabilities,omitempty"`

	ShortTermLoansPayable       *int64 `json:"short_term_loans_payable,omitempty" yaml:"short_term_loans_payable,omitempty"`
	LongTermLoansPayable        *int64 `json:"long_term_loans_payable,omitempty" yaml:"long_term_loans_payable,omitempty"`
	BondsPayable                *int64 `json:"bonds_payable,omitempty" yaml:"bonds_payable,omitempty"`
	CurrentPortionLongTermLoans *int64 `json:"current_portion_long_term_loans_payable,omitempty" yaml:"current_portion_long_term_loans_payable,omitempty"`
	LeaseObligationsCurrent     *int64 `json:"lease_obligations_current,omitempty" yaml:"lease_obligations_current,omitempty"`
	LeaseObligationsNoncurrent  *int64 `json:"lease_obligations_noncurrent,omitempty" yaml:"lease_obligations_noncurrent,omitempty"`
	CommercialPaper             *int64 `json:"commercial_paper,omitempty" yaml:"commercial_paper,omitempty"`

	OperatingCashFlow *int64 `json:"operating_cash_flow,omitempty" yaml:"operating_cash_flow,omitempty"`
	InvestingCashFlow *int64 `json:"investing_cash_flow,omitempty" yaml:"investing_cash_flow,omitempty"`
	FinancingCashFlow *int64 `json:"financing_cash_flow,omitempty" yaml:"financing_cash_flow,omitempty"`

	NetAssetsPerShare *decimal.Decimal `json:"net_assets_per_share,omitempty" yaml:"net_assets_per_share,omitempty"`
	EarningsPerShare  *decimal.Decimal `json:"earnings_per_share,omitempty" yaml:"earnings_per_share,omitempty"`

	EquityRatio *decimal.Decimal `json:"equity_ratio,omitempty" yaml:"equity_ratio,omitempty"`
	ROE         *decimal.Decimal `json:"roe,omitempty" yaml:"roe,omitempty"`

	NumEmployees *int64 `json:"num_employees,omitempty" yaml:"num_employees,omitempty"`
}

func (*Securities) Kind() Kind          { return KindSecurities }
func (r *Securities) FilerCode() string { return r.FilerEDINETCode }

// Quarterly is a parsed quarterly report (doc type 140). Income statement
// and cash flow figures are year-to-date cumulative, not single-quarter.
type Quarterly struct {
	Report `yaml:",inline"`

	FilerName       string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerEDINETCode string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	Ticker          string `json:"ticker,omitempty" yaml:"ticker,omitempty"`
	IsConsolidated  bool   `json:"is_consolidated" yaml:"is_consolidated"`

	FiscalYearEnd *time.Time `json:"fiscal_year_end,omitempty" yaml:"fiscal_year_end,omitempty"`
	QuarterNumber *int       `json:"quarter_number,omitempty" yaml:"quarter_number,omitempty"` // 1, 2, or 3
	FilingDate    *time.Time `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`

	RevenueYTD         *int64 `json:"revenue_ytd,omitempty" yaml:"revenue_ytd,omitempty"`
	OperatingProfitYTD *int64 `json:"operating_profit_ytd,omitempty" yaml:"operating_profit_ytd,omitempty"`
	OrdinaryProfitYTD  *int64 `json:"ordinary_profit_ytd,omitempty" yaml:"ordinary_profit_ytd,omitempty"`
	NetIncomeYTD       *int64 `json:"net_income_ytd,omitempty" yaml:"net_income_ytd,omitempty"`

	PriorRevenueYTD         *int64 `json:"prior_revenue_ytd,omitempty" yaml:"prior_revenue_ytd,omitempty"`
	PriorOperatingProfitYTD *int64 `json:"prior_operating_profit_ytd,omitempty" yaml:"prior_operating_profit_ytd,omitempty"`
	PriorOrdinaryProfitYTD  *int64 `json:"prior_ordinary_profit_ytd,omitempty" yaml:"prior_ordinary_profit_ytd,omitempty"`
	PriorNetIncomeYTD       *int64 `json:"prior_net_income_ytd,omitempty" yaml:"prior_net_income_ytd,omitempty"`

	TotalAssets      *int64 `json:"total_assets,omitempty" yaml:"total_assets,omitempty"`
	NetAssets        *int64 `json:"net_assets,omitempty" yaml:"net_assets,omitempty"`
	TotalLiabilities *int64 `json:"total_liabilities,omitempty" yaml:"total_liabilities,omitempty"`

	OperatingCashFlowYTD *int64 `json:"operating_cash_flow_ytd,omitempty" yaml:"operating_cash_flow_ytd,omitempty"`
	InvestingCashFlowYTD *int64 `json:"investing_cash_flow_ytd,omitempty" yaml:"investing_cash_flow_ytd,omitempty"`
	FinancingCashFlowYTD *int64 `json:"financing_cash_flow_ytd,omitempty" yaml:"financing_cash_flow_ytd,omitempty"`

	EPSBasicYTD *decimal.Decimal `json:"eps_basic_ytd,omitempty" yaml:"eps_basic_ytd,omitempty"`
	EquityRatio *decimal.Decimal `json:"equity_ratio,omitempty" yaml:"equity_ratio,omitempty"`
}

func (*Quarterly) Kind() Kind          { return KindQuarterly }
func (r *Quarterly) FilerCode() string { return r.FilerEDINETCode }

// SemiAnnual is a parsed semi-annual report (doc type 160), filed mostly
// by investment funds; corporate filers use the same shape.
type SemiAnnual struct {
	Report `yaml:",inline"`

	FilerName       string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerEDINETCode string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	FundCode        string `json:"fund_code,omitempty" yaml:"fund_code,omitempty"`
	FundName        string `json:"fund_name,omitempty" yaml:"fund_name,omitempty"`

	PeriodStart *time.Time `json:"period_start,omitempty" yaml:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty" yaml:"period_end,omitempty"`
	FilingDate  *time.Time `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`

	TotalAssets        *int64 `json:"total_assets,omitempty" yaml:"total_assets,omitempty"`
	CurrentAssets      *int64 `json:"current_assets,omitempty" yaml:"current_assets,omitempty"`
	TotalLiabilities   *int64 `json:"total_liabilities,omitempty" yaml:"total_liabilities,omitempty"`
	CurrentLiabilities *int64 `json:"current_liabilities,omitempty" yaml:"current_liabilities,omitempty"`
	NetAssets          *int64 `json:"net_assets,omitempty" yaml:"net_assets,omitempty"`

	OperatingIncome *int64 `json:"operating_income,omitempty" yaml:"operating_income,omitempty"`
	OrdinaryIncome  *int64 `json:"ordinary_income,omitempty" yaml:"ordinary_income,omitempty"`
	ProfitLoss      *int64 `json:"profit_loss,omitempty" yaml:"profit_loss,omitempty"`
}

func (*SemiAnnual) Kind() Kind          { return KindSemiAnnual }
func (r *SemiAnnual) FilerCode() string { return r.FilerEDINETCode }

// IsFund reports whether the filing covers an investment fund rather than
// a corporation.
func (r *SemiAnnual) IsFund() bool { return r.FundCode != "" || r.FundName != "" }

// Extraordinary is a parsed extraordinary report (doc type 180): an
// event-driven disclosure for significant corporate events.
type Extraordinary struct {
	Report `yaml:",inline"`

	FilerName       string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerNameEN     string `json:"filer_name_en,omitempty" yaml:"filer_name_en,omitempty"`
	FilerEDINETCode string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	Ticker          string `json:"ticker,omitempty" yaml:"ticker,omitempty"`
	FundCode        string `json:"fund_code,omitempty" yaml:"fund_code,omitempty"`
	FundName        string `json:"fund_name,omitempty" yaml:"fund_name,omitempty"`

	DocumentTitle  string     `json:"document_title,omitempty" yaml:"document_title,omitempty"`
	FilingDate     *time.Time `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`
	Representative string     `json:"representative,omitempty" yaml:"representative,omitempty"`
	Address        string     `json:"address,omitempty" yaml:"address,omitempty"`

	ReasonForFiling string `json:"reason_for_filing,omitempty" yaml:"reason_for_filing,omitempty"`
	EventType       string `json:"event_type,omitempty" yaml:"event_type,omitempty"`
}

func (*Extraordinary) Kind() Kind          { return KindExtraordinary }
func (r *Extraordinary) FilerCode() string { return r.FilerEDINETCode }

// IsFund reports whether the filing covers an investment fund.
func (r *Extraordinary) IsFund() bool { return r.FundCode != "" || r.FundName != "" }

// TreasuryStock is a parsed treasury stock purchase status report (doc
// types 220 and 230, the latter being amendments). Buyback share counts
// live inside narrative text blocks, not structured numeric facts.
type TreasuryStock struct {
	Report `yaml:",inline"`

	FilerName       string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerNameEN     string `json:"filer_name_en,omitempty" yaml:"filer_name_en,omitempty"`
	FilerEDINETCode string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	Ticker          string `json:"ticker,omitempty" yaml:"ticker,omitempty"`

	DocumentTitle   string     `json:"document_title,omitempty" yaml:"document_title,omitempty"`
	FilingDate      *time.Time `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`
	Representative  string     `json:"representative,omitempty" yaml:"representative,omitempty"`
	Address         string     `json:"address,omitempty" yaml:"address,omitempty"`
	ReportingPeriod string     `json:"reporting_period,omitempty" yaml:"reporting_period,omitempty"`

	IsAmendment bool `json:"is_amendment" yaml:"is_amendment"`

	ByShareholdersMeeting string `json:"by_shareholders_meeting,omitempty" yaml:"by_shareholders_meeting,omitempty"`
	ByBoardMeeting        string `json:"by_board_meeting,omitempty" yaml:"by_board_meeting,omitempty"`
	DisposalHoldingText   string `json:"disposal_holding_text,omitempty" yaml:"disposal_holding_text,omitempty"`
}

func (*TreasuryStock) Kind() Kind          { return KindTreasuryStock }
func (r *TreasuryStock) FilerCode() string { return r.FilerEDINETCode }

// HasBoardAuthorization reports whether the buyback was authorized by a
// board meeting resolution.
func (r *TreasuryStock) HasBoardAuthorization() bool { return r.ByBoardMeeting != "" }

// HasShareholderAuthorization reports whether the buyback was authorized
// by a shareholders meeting resolution.
func (r *TreasuryStock) HasShareholderAuthorization() bool { return r.ByShareholdersMeeting != "" }

// Raw is the fallback for document types without a dedicated builder. It
// carries no semantic mapping; RawFields is the exploration surface and
// UnmappedFields stays empty because there is no field table to be outside
// of.
type Raw struct {
	Report `yaml:",inline"`

	FilerName       string `json:"filer_name,omitempty" yaml:"filer_name,omitempty"`
	FilerNameEN     string `json:"filer_name_en,omitempty" yaml:"filer_name_en,omitempty"`
	FilerEDINETCode string `json:"filer_edinet_code,omitempty" yaml:"filer_edinet_code,omitempty"`
	Ticker          string `json:"ticker,omitempty" yaml:"ticker,omitempty"`
	DocDescription  string `json:"doc_description,omitempty" yaml:"doc_description,omitempty"`
}

func (*Raw) Kind() Kind          { return KindRaw }
func (r *Raw) FilerCode() string { return r.FilerEDINETCode }
