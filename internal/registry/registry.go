// Package registry classifies EDINET filers using the FSA's official
// code list downloads: EdinetcodeDlInfo.csv for registered entities and
// FundcodeDlInfo.csv for investment funds. Classification is data-driven
// only; there is no keyword guessing.
package registry

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/sells-group/edinet-cli/internal/report"
)

// EntityType is the coarse classification of an EDINET filer.
type EntityType string

const (
	EntityFund     EntityType = "fund"
	EntityListed   EntityType = "listed_company"
	EntityUnlisted EntityType = "unlisted_company"
	EntityPerson   EntityType = "individual"
	EntityUnknown  EntityType = "unknown"
)

// Entity is one row of the EDINET code list.
type Entity struct {
	EDINETCode     string
	SubmitterType  string
	Listed         bool
	NameJP         string
	NameEN         string
	SecuritiesCode string
}

// Registry holds the loaded code lists, indexed by EDINET code.
type Registry struct {
	entities map[string]Entity
	funds    map[string]struct{}
}

// Load reads both code list CSVs. Either path may be empty; lookups
// against the missing list simply report unknown.
func Load(entityCSV, fundCSV string) (*Registry, error) {
	r := &Registry{
		entities: make(map[string]Entity),
		funds:    make(map[string]struct{}),
	}

	if entityCSV != "" {
		if err := r.loadEntities(entityCSV); err != nil {
			return nil, err
		}
	}
	if fundCSV != "" {
		if err := r.loadFunds(fundCSV); err != nil {
			return nil, err
		}
	}

	zap.L().Info("registry: loaded code lists",
		zap.Int("entities", len(r.entities)),
		zap.Int("fund_issuers", len(r.funds)),
	)
	return r, nil
}

// codeListReader opens an FSA code list: Shift-JIS encoded, one metadata
// row and one header row before the data.
func codeListReader(path string) (*csv.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "registry: open %s", path)
	}

	cr := csv.NewReader(transform.NewReader(f, japanese.ShiftJIS.NewDecoder()))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for i := 0; i < 2; i++ {
		if _, err := cr.Read(); err != nil {
			f.Close()
			return nil, nil, eris.Wrapf(err, "registry: read header of %s", path)
		}
	}
	return cr, f, nil
}

func (r *Registry) loadEntities(path string) error {
	cr, closer, err := codeListReader(path)
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return eris.Wrapf(err, "registry: read %s", path)
		}
		if len(row) < 7 {
			continue
		}
		code := strings.TrimSpace(row[0])
		if !strings.HasPrefix(code, "E") {
			continue
		}
		// The listing column appears as 上場 or "Listed company" depending
		// on which download variant the file came from.
		listing := strings.TrimSpace(row[2])
		e := Entity{
			EDINETCode:    code,
			SubmitterType: strings.TrimSpace(row[1]),
			Listed:        listing == "上場" || listing == "Listed company",
			NameJP:        strings.TrimSpace(row[6]),
		}
		if len(row) > 7 {
			e.NameEN = strings.TrimSpace(row[7])
		}
		if len(row) > 11 {
			e.SecuritiesCode = strings.TrimSpace(row[11])
		}
		r.entities[code] = e
	}
	return nil
}

// loadFunds records the issuer EDINET codes of registered funds. Column 7
// of the fund list is the issuer code.
func (r *Registry) loadFunds(path string) error {
	cr, closer, err := codeListReader(path)
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return eris.Wrapf(err, "registry: read %s", path)
		}
		if len(row) < 8 {
			continue
		}
		code := strings.TrimSpace(row[7])
		if strings.HasPrefix(code, "E") {
			r.funds[code] = struct{}{}
		}
	}
	return nil
}

// Classify returns the entity type for an EDINET code. Fund issuers
// appear in both lists and classify as funds.
func (r *Registry) Classify(edinetCode string) EntityType {
	if edinetCode == "" {
		return EntityUnknown
	}
	if _, ok := r.funds[edinetCode]; ok {
		return EntityFund
	}
	e, ok := r.entities[edinetCode]
	if !ok {
		return EntityUnknown
	}
	if strings.Contains(e.SubmitterType, "個人") {
		return EntityPerson
	}
	if e.Listed {
		return EntityListed
	}
	return EntityUnlisted
}

// ClassifyReport classifies the filer of a parsed report.
func (r *Registry) ClassifyReport(p report.FilerIdentified) EntityType {
	return r.Classify(p.FilerCode())
}

// IsFund reports whether the code belongs to a fund issuer.
func (r *Registry) IsFund(edinetCode string) bool {
	_, ok := r.funds[edinetCode]
	return ok
}

// IsListed reports whether the code belongs to a listed company.
func (r *Registry) IsListed(edinetCode string) bool {
	return r.entities[edinetCode].Listed
}

// IsKnown reports whether the code appears in either list. Unknown codes
// usually mean the downloaded lists are stale.
func (r *Registry) IsKnown(edinetCode string) bool {
	if _, ok := r.entities[edinetCode]; ok {
		return true
	}
	_, ok := r.funds[edinetCode]
	return ok
}

// Entity returns the code list row for an EDINET code.
func (r *Registry) Entity(edinetCode string) (Entity, bool) {
	e, ok := r.entities[edinetCode]
	return e, ok
}

// SecuritiesCode returns the 4-digit securities code for listed
// companies; the list carries 5-digit codes with a trailing zero.
func (r *Registry) SecuritiesCode(edinetCode string) string {
	code := r.entities[edinetCode].SecuritiesCode
	if len(code) == 5 && strings.HasSuffix(code, "0") {
		return code[:4]
	}
	return code
}

// ByTicker finds the entity whose securities code matches the ticker.
// Both 4-digit ("7203") and suffixed ("7203.T") forms are accepted.
func (r *Registry) ByTicker(ticker string) (Entity, bool) {
	code := strings.TrimSuffix(strings.TrimSpace(ticker), ".T")
	if code == "" {
		return Entity{}, false
	}
	for _, e := range r.entities {
		sc := e.SecuritiesCode
		if len(sc) == 5 && strings.HasSuffix(sc, "0") {
			sc = sc[:4]
		}
		if sc != "" && sc == code {
			return e, true
		}
	}
	return Entity{}, false
}

// Search returns entities whose Japanese or English name contains the
// query as a substring, case-insensitive for English names.
func (r *Registry) Search(query string) []Entity {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)

	var out []Entity
	for _, e := range r.entities {
		if strings.Contains(e.NameJP, query) ||
			strings.Contains(strings.ToLower(e.NameEN), lower) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EDINETCode < out[j].EDINETCode })
	return out
}

// Name returns the entity's name, preferring English when requested and
// available.
func (r *Registry) Name(edinetCode string, preferEnglish bool) string {
	e, ok := r.entities[edinetCode]
	if !ok {
		return ""
	}
	if preferEnglish && e.NameEN != "" {
		return e.NameEN
	}
	return e.NameJP
}

// Stats summarizes the loaded data.
type Stats struct {
	Entities    int `json:"entities"`
	Listed      int `json:"listed"`
	FundIssuers int `json:"fund_issuers"`
}

// Stats returns counts over the loaded lists.
func (r *Registry) Stats() Stats {
	s := Stats{Entities: len(r.entities), FundIssuers: len(r.funds)}
	for _, e := range r.entities {
		if e.Listed {
			s.Listed++
		}
	}
	return s
}
