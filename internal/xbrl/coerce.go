package xbrl

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Filers mark not-applicable facts with one of several dash glyphs rather
// than leaving the cell empty.
var placeholderDashes = []string{"－", "―", "-", "—"}

func isPlaceholder(v string) bool {
	for _, d := range placeholderDashes {
		if v == d {
			return true
		}
	}
	return false
}

// ParseInt parses an integer value, tolerating ASCII and full-width
// thousands separators and decimal notation ("1，234，567", "123.0").
// Placeholder dashes and unparseable values yield nil.
func ParseInt(v string) *int64 {
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, ",", "")
	v = strings.ReplaceAll(v, "，", "")
	if v == "" || isPlaceholder(v) {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	n := int64(f)
	return &n
}

// ParsePercent parses a ratio value as a fixed-point decimal. EDINET stores
// ratios as the literal decimal (0.0967 means 9.67%); the value is returned
// as-is, never multiplied by 100. A trailing percent sign is stripped.
// Placeholders and N/A tokens yield nil.
func ParsePercent(v string) *decimal.Decimal {
	v = strings.TrimSpace(v)
	if v == "N/A" || v == "n/a" {
		return nil
	}
	return ParseDecimal(strings.TrimSuffix(v, "%"))
}

// ParseDecimal parses a fixed-point decimal value (per-share figures and
// similar). Placeholders and unparseable values yield nil.
func ParseDecimal(v string) *decimal.Decimal {
	v = strings.TrimSpace(v)
	if v == "" || isPlaceholder(v) {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
}

// ParseDate parses ISO, slash-delimited, and Japanese calendar
// (2025年11月20日) date forms. The result is midnight UTC. Placeholders and
// unrecognized forms yield nil.
func ParseDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" || isPlaceholder(v) {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return &t
		}
	}
	if strings.ContainsRune(v, '年') {
		cleaned := strings.NewReplacer("年", "-", "月", "-", "日", "").Replace(v)
		for _, layout := range []string{"2006-01-02", "2006-1-2"} {
			if t, err := time.ParseInLocation(layout, cleaned, time.UTC); err == nil {
				return &t
			}
		}
	}
	return nil
}

// UnitScale returns the multiplier implied by a unit-scale cell containing
// a Japanese magnitude word (千円 thousand, 百万円 million, 十億円 billion).
// Plain yen or unrecognized units multiply by 1.
func UnitScale(unit string) int64 {
	switch {
	case strings.Contains(unit, "十億円"):
		return 1_000_000_000
	case strings.Contains(unit, "百万円"):
		return 1_000_000
	case strings.Contains(unit, "千円"):
		return 1_000
	default:
		return 1
	}
}
