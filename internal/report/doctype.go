package report

import "sort"

// DocType is metadata about an EDINET document type code.
type DocType struct {
	Code        string `json:"code" yaml:"code"`
	NameEN      string `json:"name_en" yaml:"name_en"`
	NameJA      string `json:"name_ja" yaml:"name_ja"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

var docTypes = map[string]DocType{
	"010": {Code: "010", NameEN: "Securities Registration", NameJA: "有価証券届出書", Description: "Registration for new securities issuance"},
	"020": {Code: "020", NameEN: "Securities Registration Amendment", NameJA: "有価証券届出書の訂正届出書", Description: "Amendment to securities registration"},
	"030": {Code: "030", NameEN: "Tender Offer Registration", NameJA: "公開買付届出書", Description: "Registration for tender offer"},
	"040": {Code: "040", NameEN: "Tender Offer Registration Amendment", NameJA: "公開買付届出書の訂正届出書", Description: "Amendment to tender offer registration"},
	"070": {Code: "070", NameEN: "Shelf Registration", NameJA: "発行登録書", Description: "Shelf registration for securities issuance"},
	"120": {Code: "120", NameEN: "Securities Report", NameJA: "有価証券報告書", Description: "Annual securities report filed by listed companies"},
	"130": {Code: "130", NameEN: "Securities Report Amendment", NameJA: "有価証券報告書の訂正報告書", Description: "Amendment to annual securities report"},
	"140": {Code: "140", NameEN: "Quarterly Report", NameJA: "四半期報告書", Description: "Quarterly financial report (Q1, Q2, Q3)"},
	"150": {Code: "150", NameEN: "Quarterly Report Amendment", NameJA: "四半期報告書の訂正報告書", Description: "Amendment to quarterly report"},
	"160": {Code: "160", NameEN: "Semi-Annual Report", NameJA: "半期報告書", Description: "Semi-annual report (primarily for investment funds)"},
	"170": {Code: "170", NameEN: "Semi-Annual Report Amendment", NameJA: "半期報告書の訂正報告書", Description: "Amendment to semi-annual report"},
	"180": {Code: "180", NameEN: "Extraordinary Report", NameJA: "臨時報告書", Description: "Report on material events (M&A, management changes, etc.)"},
	"190": {Code: "190", NameEN: "Extraordinary Report Amendment", NameJA: "臨時報告書の訂正報告書", Description: "Amendment to extraordinary report"},
	"220": {Code: "220", NameEN: "Treasury Stock Report", NameJA: "自己株券買付状況報告書", Description: "Report on treasury stock buyback activity"},
	"230": {Code: "230", NameEN: "Treasury Stock Report Amendment", NameJA: "自己株券買付状況報告書の訂正報告書", Description: "Amendment to treasury stock report"},
	"350": {Code: "350", NameEN: "Large Shareholding Report", NameJA: "大量保有報告書", Description: "Report when ownership exceeds 5% of a listed company"},
	"360": {Code: "360", NameEN: "Large Shareholding Report Amendment", NameJA: "大量保有報告書の訂正報告書", Description: "Amendment to large shareholding report"},
	"370": {Code: "370", NameEN: "Large Shareholding Change Report", NameJA: "変更報告書", Description: "Report on changes to large shareholding position"},
	"380": {Code: "380", NameEN: "Large Shareholding Change Report Amendment", NameJA: "変更報告書の訂正報告書", Description: "Amendment to change report"},
}

// DocTypeByCode looks up document type metadata; ok is false for
// unregistered codes.
func DocTypeByCode(code string) (DocType, bool) {
	dt, ok := docTypes[code]
	return dt, ok
}

// DocTypes returns all registered document types sorted by code.
func DocTypes() []DocType {
	out := make([]DocType, 0, len(docTypes))
	for _, dt := range docTypes {
		out = append(out, dt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
