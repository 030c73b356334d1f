package registry

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// writeCodeList writes rows as a Shift-JIS CSV with the FSA layout: one
// metadata row and one header row ahead of the data.
func writeCodeList(t *testing.T, name string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := transform.NewWriter(f, japanese.ShiftJIS.NewEncoder())
	cw := csv.NewWriter(w)

	require.NoError(t, cw.Write([]string{"ダウンロード実行日", "2026/02/02"}))
	require.NoError(t, cw.Write(header))
	for _, row := range rows {
		require.NoError(t, cw.Write(row))
	}
	cw.Flush()
	require.NoError(t, cw.Error())
	require.NoError(t, w.Close())
	return path
}

func entityRow(code, submitterType, listing, nameJP, nameEN, secCode string) []string {
	return []string{code, submitterType, listing, "", "", "", nameJP, nameEN, "", "", "", secCode}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	entityCSV := writeCodeList(t, "EdinetcodeDlInfo.csv",
		[]string{"ＥＤＩＮＥＴコード", "提出者種別", "上場区分", "連結の有無", "資本金", "決算日", "提出者名", "提出者名（英字）", "提出者名（ヨミ）", "所在地", "提出者業種", "証券コード"},
		[][]string{
			entityRow("E10001", "内国法人・組合", "上場", "トヨタ自動車株式会社", "TOYOTA MOTOR CORPORATION", "72030"),
			entityRow("E10002", "内国法人・組合", "非上場", "非上場株式会社", "", ""),
			entityRow("E10003", "個人（内国）", "", "山田太郎", "", ""),
			entityRow("E20001", "内国法人・組合", "非上場", "ファンド設定者株式会社", "", ""),
			{"not-a-code", "内国法人・組合", "上場", "ゴミ行"},
		})

	fundCSV := writeCodeList(t, "FundcodeDlInfo.csv",
		[]string{"ファンドコード", "名称", "名称（英字）", "名称（ヨミ）", "区分", "連動対象", "内外区分", "発行者ＥＤＩＮＥＴコード"},
		[][]string{
			{"G00001", "テスト投信", "", "", "", "", "", "E20001"},
			{"G00002", "欠損行"},
		})

	r, err := Load(entityCSV, fundCSV)
	require.NoError(t, err)
	return r
}

func TestClassify(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	tests := []struct {
		name string
		code string
		want EntityType
	}{
		{"listed company", "E10001", EntityListed},
		{"unlisted company", "E10002", EntityUnlisted},
		{"individual", "E10003", EntityPerson},
		// Fund issuers appear in both lists; the fund list wins.
		{"fund issuer", "E20001", EntityFund},
		{"unknown code", "E99999", EntityUnknown},
		{"empty code", "", EntityUnknown},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Classify(tt.code))
		})
	}
}

func TestLookupHelpers(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	assert.True(t, r.IsListed("E10001"))
	assert.False(t, r.IsListed("E10002"))
	assert.True(t, r.IsFund("E20001"))
	assert.False(t, r.IsFund("E10001"))

	assert.True(t, r.IsKnown("E10001"))
	assert.True(t, r.IsKnown("E20001"))
	assert.False(t, r.IsKnown("E99999"))

	// Malformed rows never load.
	assert.False(t, r.IsKnown("not-a-code"))

	e, ok := r.Entity("E10001")
	require.True(t, ok)
	assert.Equal(t, "トヨタ自動車株式会社", e.NameJP)
	assert.Equal(t, "TOYOTA MOTOR CORPORATION", e.NameEN)
}

func TestSecuritiesCode(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	assert.Equal(t, "7203", r.SecuritiesCode("E10001"))
	assert.Equal(t, "", r.SecuritiesCode("E10002"))
	assert.Equal(t, "", r.SecuritiesCode("E99999"))
}

func TestByTicker(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	e, ok := r.ByTicker("7203")
	require.True(t, ok)
	assert.Equal(t, "E10001", e.EDINETCode)

	e, ok = r.ByTicker("7203.T")
	require.True(t, ok)
	assert.Equal(t, "E10001", e.EDINETCode)

	_, ok = r.ByTicker("9999")
	assert.False(t, ok)
	_, ok = r.ByTicker("")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	hits := r.Search("トヨタ")
	require.Len(t, hits, 1)
	assert.Equal(t, "E10001", hits[0].EDINETCode)

	hits = r.Search("toyota")
	require.Len(t, hits, 1)
	assert.Equal(t, "E10001", hits[0].EDINETCode)

	assert.Empty(t, r.Search("存在しない"))
	assert.Empty(t, r.Search(""))
}

func TestName(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	assert.Equal(t, "トヨタ自動車株式会社", r.Name("E10001", false))
	assert.Equal(t, "TOYOTA MOTOR CORPORATION", r.Name("E10001", true))
	// English preference falls back when no English name exists.
	assert.Equal(t, "非上場株式会社", r.Name("E10002", true))
	assert.Equal(t, "", r.Name("E99999", true))
}

func TestStats(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	s := r.Stats()
	assert.Equal(t, 4, s.Entities)
	assert.Equal(t, 1, s.Listed)
	assert.Equal(t, 1, s.FundIssuers)
}

func TestLoad_EmptyPathsDegradeToUnknown(t *testing.T) {
	t.Parallel()

	r, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, EntityUnknown, r.Classify("E10001"))
	assert.False(t, r.IsKnown("E10001"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), "")
	require.Error(t, err)
}

func TestLoad_EnglishListingVariant(t *testing.T) {
	t.Parallel()

	entityCSV := writeCodeList(t, "EdinetcodeDlInfo.csv",
		[]string{"EDINET Code", "Submitter type", "Listed company / Unlisted company"},
		[][]string{
			entityRow("E30001", "Domestic company", "Listed company", "Example Co.", "", "12340"),
		})

	r, err := Load(entityCSV, "")
	require.NoError(t, err)
	assert.Equal(t, EntityListed, r.Classify("E30001"))
}
