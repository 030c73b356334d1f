package parser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edinet-cli/internal/report"
)

func TestBuildTreasuryStock_Report(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{
		id:       "S100TS1",
		typeCode: "220",
		data: fixtureArchive(t,
			fact("jpdei_cor:EDINETCodeDEI", "FilingDateInstant", "", "E12345"),
			fact("jpdei_cor:SecurityCodeDEI", "FilingDateInstant", "", "72030"),
			fact("jpcrp-sbr_cor:CompanyNameCoverPage", "FilingDateInstant", "", "株式会社テスト"),
			fact("jpcrp-sbr_cor:FilingDateCoverPage", "FilingDateInstant", "", "2026年1月15日"),
			fact("jpcrp-sbr_cor:ReportingPeriodCoverPage", "FilingDateInstant", "", "2025年12月1日から2025年12月31日"),
			fact("jpcrp-sbr_cor:AcquisitionsByResolutionOfBoardOfDirectorsMeetingTextBlock", "FilingDateInstant", "", "取締役会決議による取得状況"),
			fact("jpcrp-sbr_cor:DisposalsOfTreasurySharesTextBlock", "FilingDateInstant", "", "処理状況"),
			fact("jpcrp-sbr_cor:HoldingOfTreasurySharesTextBlock", "FilingDateInstant", "", "保有状況"),
		),
	}

	ts := Parse(context.Background(), doc).(*report.TreasuryStock)

	assert.False(t, ts.IsAmendment)
	assert.Equal(t, "株式会社テスト", ts.FilerName)
	assert.Equal(t, "7203.T", ts.Ticker)

	// No cover title in the filing: the statutory title applies.
	assert.Equal(t, "自己株券買付状況報告書", ts.DocumentTitle)

	require.NotNil(t, ts.FilingDate)
	assert.True(t, ts.FilingDate.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))

	assert.True(t, ts.HasBoardAuthorization())
	assert.False(t, ts.HasShareholderAuthorization())

	assert.Equal(t, "処理状況\n保有状況", ts.DisposalHoldingText)
}

func TestBuildTreasuryStock_ShareholdersMeetingAuthorization(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{
		id:       "S100TS4",
		typeCode: "220",
		data: fixtureArchive(t,
			fact("jpcrp-sbr_cor:AcquisitionsByResolutionOfShareholdersMeetingTextBlock", "FilingDateInstant", "", "株主総会決議による取得状況"),
		),
	}

	ts := Parse(context.Background(), doc).(*report.TreasuryStock)
	assert.True(t, ts.HasShareholderAuthorization())
	assert.False(t, ts.HasBoardAuthorization())
	assert.Equal(t, "株主総会決議による取得状況", ts.ByShareholdersMeeting)
}

func TestBuildTreasuryStock_AmendmentFlag(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{id: "S100TS2", typeCode: "230"}

	ts := Parse(context.Background(), doc).(*report.TreasuryStock)
	assert.True(t, ts.IsAmendment)
	assert.Equal(t, report.KindTreasuryStock, ts.Kind())
}

func TestBuildTreasuryStock_HoldingOnlyNoSeparator(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{
		id:       "S100TS3",
		typeCode: "220",
		data: fixtureArchive(t,
			fact("jpcrp-sbr_cor:HoldingOfTreasurySharesTextBlock", "FilingDateInstant", "", "保有状況のみ"),
		),
	}

	ts := Parse(context.Background(), doc).(*report.TreasuryStock)
	assert.Equal(t, "保有状況のみ", ts.DisposalHoldingText)
}
