package parser

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

// fakeDoc is an in-memory parser document.
type fakeDoc struct {
	id       string
	typeCode string
	filer    string
	edinet   string
	desc     string
	filed    *time.Time
	data     []byte
	err      error
}

func (d *fakeDoc) Fetch(context.Context) ([]byte, error) { return d.data, d.err }
func (d *fakeDoc) DocID() string                         { return d.id }
func (d *fakeDoc) DocTypeCode() string                   { return d.typeCode }
func (d *fakeDoc) FilerName() string                     { return d.filer }
func (d *fakeDoc) FilerEDINETCode() string               { return d.edinet }
func (d *fakeDoc) FilingTime() *time.Time                { return d.filed }
func (d *fakeDoc) Description() string                   { return d.desc }

// fact renders one nine-column export row.
func fact(elementID, contextID, unitScale, value string) string {
	return fmt.Sprintf("%s\tラベル\t%s\t当期\t連結\t期間\tJPY\t%s\t%s", elementID, contextID, unitScale, value)
}

// fixtureArchive zips the facts into one UTF-16LE CSV entry, the shape
// EDINET delivers.
func fixtureArchive(t *testing.T, facts ...string) []byte {
	t.Helper()

	content := strings.Join(facts, "\n") + "\n"
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("XBRL_TO_CSV/jpcrp030000-asr-001.csv")
	require.NoError(t, err)
	_, err = w.Write(encoded)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func timePtr(t time.Time) *time.Time { return &t }
