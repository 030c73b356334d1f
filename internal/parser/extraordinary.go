package parser

import (
	"strings"

	"github.com/sells-group/edinet-cli/internal/report"
	"github.com/sells-group/edinet-cli/internal/xbrl"
)

// Extraordinary reports (doc type 180) are filed under two cover-page
// taxonomies: jpsps-esr_cor for fund filers and jpcrp-esr_cor for
// corporate filers. Every cover field is tried fund-first and coalesced.
var extraordinaryTable = fieldTable{
	"edinet_code": {Element: "jpdei_cor:EDINETCodeDEI"},
	"fund_code":   {Element: "jpdei_cor:FundCodeDEI"},
	"fund_name":   {Element: "jpdei_cor:FundNameInJapaneseDEI"},

	"security_code": {Element: "jpdei_cor:SecurityCodeDEI"},

	"title_sps":          {Element: "jpsps-esr_cor:DocumentTitleCoverPage"},
	"title_crp":          {Element: "jpcrp-esr_cor:DocumentTitleCoverPage"},
	"company_name_sps":   {Element: "jpsps-esr_cor:CompanyNameCoverPage"},
	"company_name_crp":   {Element: "jpcrp-esr_cor:CompanyNameCoverPage"},
	"company_name_en":    {Element: "jpcrp-esr_cor:CompanyNameInEnglishCoverPage"},
	"filing_date_sps":    {Element: "jpsps-esr_cor:FilingDateCoverPage"},
	"filing_date_crp":    {Element: "jpcrp-esr_cor:FilingDateCoverPage"},
	"representative_sps": {Element: "jpsps-esr_cor:TitleAndNameOfRepresentativeCoverPage"},
	"representative_crp": {Element: "jpcrp-esr_cor:TitleAndNameOfRepresentativeCoverPage"},
	"address_sps":        {Element: "jpsps-esr_cor:AddressOfRegisteredHeadquarterCoverPage"},
	"address_crp":        {Element: "jpcrp-esr_cor:AddressOfRegisteredHeadquarterCoverPage"},

	"reason_sps": {Element: "jpsps-esr_cor:ReasonForFilingTextBlock"},
	"reason_crp": {Element: "jpcrp-esr_cor:ReasonForFilingTextBlock"},
}

// eventKeywords classifies the filing reason by first matching keyword.
// Order is the match priority: fund lifecycle events (trust termination,
// trust deed changes, dissolution) sit ahead of the corporate events that
// share wording with them, and the broad material-change bucket goes
// last.
var eventKeywords = []struct {
	keyword string
	event   string
}{
	{"信託終了", "trust_termination"},
	{"信託契約の終了", "trust_termination"},
	{"繰上償還", "trust_termination"},
	{"株式交換", "share_exchange"},
	{"株式移転", "share_transfer"},
	{"合併", "merger"},
	{"統合", "merger"},
	{"信託約款", "trust_change"},
	{"約款変更", "trust_change"},
	{"運用方針の変更", "trust_change"},
	{"解散", "dissolution"},
	{"清算", "dissolution"},
	{"会社分割", "company_split"},
	{"公開買付", "tender_offer"},
	{"破産", "bankruptcy"},
	{"民事再生", "civil_rehabilitation"},
	{"会社更生", "corporate_reorganization"},
	{"災害", "disaster"},
	{"訴訟", "litigation"},
	{"代表取締役", "representative_change"},
	{"主要株主", "major_shareholder_change"},
	{"親会社", "parent_company_change"},
	{"子会社", "subsidiary_change"},
	{"募集", "share_offering"},
	{"新株予約権", "stock_acquisition_rights"},
	{"株主総会", "shareholder_meeting"},
	{"決算", "financial_results"},
	{"重要な変更", "material_change"},
	{"重要事項", "material_change"},
}

// classifyEvent maps a filing-reason text to a coarse event label:
// "unknown" when there is no reason text, "other" when no keyword
// matches.
func classifyEvent(reason string) string {
	if reason == "" {
		return "unknown"
	}
	for _, k := range eventKeywords {
		if strings.Contains(reason, k.keyword) {
			return k.event
		}
	}
	return "other"
}

func buildExtraordinary(doc Document, files []xbrl.SourceFile) report.Parsed {
	if len(files) == 0 {
		return &report.Extraordinary{Report: emptyCommon(doc)}
	}

	e := &extractor{ix: xbrl.NewIndex(files), table: extraordinaryTable}

	reason := coalesce(e.get("reason_sps"), e.get("reason_crp"))

	r := &report.Extraordinary{
		Report: newCommon(doc, files, extraordinaryTable),

		FilerName: coalesce(
			e.get("company_name_sps"),
			e.get("company_name_crp"),
			doc.FilerName(),
		),
		FilerNameEN:     e.get("company_name_en"),
		FilerEDINETCode: coalesce(e.dei("edinet_code"), doc.FilerEDINETCode()),
		Ticker:          formatTicker(e.dei("security_code")),
		FundCode:        e.dei("fund_code"),
		FundName:        e.dei("fund_name"),

		DocumentTitle:  coalesce(e.get("title_sps"), e.get("title_crp")),
		FilingDate:     xbrl.ParseDate(coalesce(e.get("filing_date_sps"), e.get("filing_date_crp"))),
		Representative: coalesce(e.get("representative_sps"), e.get("representative_crp")),
		Address:        coalesce(e.get("address_sps"), e.get("address_crp")),

		ReasonForFiling: reason,
		EventType:       classifyEvent(reason),
	}

	if r.FilingDate == nil {
		if ft := doc.FilingTime(); ft != nil {
			d := dateOf(*ft)
			r.FilingDate = &d
		}
	}

	return r
}
