package xbrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_Partition(t *testing.T) {
	t.Parallel()

	files := []SourceFile{{Name: "a.csv", Rows: []RawRow{
		row("jppfs_cor:NetSales", "CurrentYearDuration", "", "100"),
		row("jpcrp_cor:BusinessRisksTextBlock", "FilingDateInstant", "", "リスク情報..."),
		row("jppfs_cor:SomethingElse", "CurrentYearDuration", "", "7"),
	}}}
	mapped := map[string]struct{}{"jppfs_cor:NetSales": {}}

	b := Categorize(files, mapped)

	// Raw holds everything.
	assert.Len(t, b.Raw, 3)
	assert.Equal(t, "100", b.Raw["jppfs_cor:NetSales"])

	// Narrative elements bucket by local name.
	assert.Equal(t, "リスク情報...", b.TextBlocks["BusinessRisksTextBlock"])
	assert.Len(t, b.TextBlocks, 1)

	// Unmapped excludes mapped elements and narrative.
	assert.Equal(t, "7", b.Unmapped["SomethingElse"])
	assert.Len(t, b.Unmapped, 1)
}

// Everything in the narrative and unmapped buckets must also be reachable
// through the raw bucket.
func TestCategorize_RawIsSuperset(t *testing.T) {
	t.Parallel()

	files := []SourceFile{{Name: "a.csv", Rows: []RawRow{
		row("x_cor:AlphaTextBlock", "c1", "", "text"),
		row("x_cor:Beta", "c1", "", "1"),
		row("y_cor:Gamma", "c1", "", "2"),
	}}}

	b := Categorize(files, nil)

	rawLocals := make(map[string]struct{}, len(b.Raw))
	for id := range b.Raw {
		rawLocals[LocalName(id)] = struct{}{}
	}
	for name := range b.TextBlocks {
		_, ok := rawLocals[name]
		assert.True(t, ok, "text block %s missing from raw", name)
	}
	for name := range b.Unmapped {
		_, ok := rawLocals[name]
		assert.True(t, ok, "unmapped %s missing from raw", name)
	}
}

func TestCategorize_LaterRowWins(t *testing.T) {
	t.Parallel()

	files := []SourceFile{{Name: "a.csv", Rows: []RawRow{
		row("x_cor:Beta", "c1", "", "first"),
		row("x_cor:Beta", "c2", "", "second"),
	}}}

	b := Categorize(files, nil)
	assert.Equal(t, "second", b.Raw["x_cor:Beta"])
	assert.Equal(t, "second", b.Unmapped["Beta"])
}

func TestCategorize_SkipsEmptyElementIDs(t *testing.T) {
	t.Parallel()

	files := []SourceFile{{Name: "a.csv", Rows: []RawRow{
		row("", "c1", "", "orphan"),
	}}}

	b := Categorize(files, nil)
	require.Empty(t, b.Raw)
	assert.Empty(t, b.TextBlocks)
	assert.Empty(t, b.Unmapped)
}
