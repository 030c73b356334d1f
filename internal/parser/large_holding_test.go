package parser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edinet-cli/internal/report"
)

func TestBuildLargeHolding_OwnershipChangeExact(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{
		id:       "S100LVH1",
		typeCode: "350",
		data: fixtureArchive(t,
			fact("jplvh_cor:Name", "FilingDateInstant", "", "保有者株式会社"),
			fact("jplvh_cor:NameOfIssuer", "FilingDateInstant", "", "発行者株式会社"),
			fact("jplvh_cor:SecurityCodeOfIssuer", "FilingDateInstant", "", "72030"),
			fact("jplvh_cor:HoldingRatioOfShareCertificatesEtc", "FilingDateInstant", "", "0.0617"),
			fact("jplvh_cor:HoldingRatioOfShareCertificatesEtcPerLastReport", "FilingDateInstant", "", "0.05"),
			fact("jplvh_cor:FilingDateCoverPage", "FilingDateInstant", "", "2026年2月2日"),
		),
	}

	parsed := Parse(context.Background(), doc)
	lh, ok := parsed.(*report.LargeHolding)
	require.True(t, ok)

	assert.Equal(t, "保有者株式会社", lh.FilerName)
	assert.Equal(t, "発行者株式会社", lh.TargetCompany)
	assert.Equal(t, "7203.T", lh.TargetTicker)

	// Exact fixed-point subtraction: 0.0617 - 0.05 is 0.0117, no binary
	// float residue.
	require.NotNil(t, lh.OwnershipChange)
	assert.Equal(t, "0.0117", lh.OwnershipChange.String())

	require.NotNil(t, lh.FilingDate)
	assert.True(t, lh.FilingDate.Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)))
}

func TestBuildLargeHolding_JointFilingLastMatch(t *testing.T) {
	t.Parallel()

	// Joint filings repeat the held-share elements per holder; the final
	// row carries the combined totals.
	doc := &fakeDoc{
		id:       "S100LVH2",
		typeCode: "350",
		data: fixtureArchive(t,
			fact("jplvh_cor:TotalNumberOfStocksEtcHeld", "FilingDateInstant_Holder1", "", "1000"),
			fact("jplvh_cor:TotalNumberOfStocksEtcHeld", "FilingDateInstant_Holder2", "", "2000"),
			fact("jplvh_cor:TotalNumberOfStocksEtcHeld", "FilingDateInstant_Total", "", "3000"),
			fact("jplvh_cor:HoldingRatioOfShareCertificatesEtc", "FilingDateInstant_Holder1", "", "0.02"),
			fact("jplvh_cor:HoldingRatioOfShareCertificatesEtc", "FilingDateInstant_Total", "", "0.06"),
			fact("jplvh_cor:PurposeOfHolding", "FilingDateInstant_Holder1", "", "純投資"),
			fact("jplvh_cor:PurposeOfHolding", "FilingDateInstant_Holder2", "", "政策投資"),
		),
	}

	lh := Parse(context.Background(), doc).(*report.LargeHolding)

	require.NotNil(t, lh.SharesHeld)
	assert.Equal(t, int64(3000), *lh.SharesHeld)
	require.NotNil(t, lh.OwnershipPct)
	assert.Equal(t, "0.06", lh.OwnershipPct.String())

	// Non-totaling fields stay first-match.
	assert.Equal(t, "純投資", lh.Purpose)
}

func TestBuildLargeHolding_FilingDateFallback(t *testing.T) {
	t.Parallel()

	filed := time.Date(2026, 3, 1, 14, 45, 0, 0, time.UTC)
	doc := &fakeDoc{
		id:       "S100LVH3",
		typeCode: "350",
		filed:    timePtr(filed),
		data: fixtureArchive(t,
			fact("jplvh_cor:NameOfIssuer", "FilingDateInstant", "", "発行者"),
		),
	}

	lh := Parse(context.Background(), doc).(*report.LargeHolding)
	require.NotNil(t, lh.FilingDate)
	assert.True(t, lh.FilingDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBuildLargeHolding_MissingPriorLeavesChangeNil(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{
		id:       "S100LVH4",
		typeCode: "350",
		data: fixtureArchive(t,
			fact("jplvh_cor:HoldingRatioOfShareCertificatesEtc", "FilingDateInstant", "", "0.0617"),
		),
	}

	lh := Parse(context.Background(), doc).(*report.LargeHolding)
	require.NotNil(t, lh.OwnershipPct)
	assert.Nil(t, lh.PriorOwnershipPct)
	assert.Nil(t, lh.OwnershipChange)
}
