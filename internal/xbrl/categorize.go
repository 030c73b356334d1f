package xbrl

import "strings"

// textBlockMarker appears in the qualified name of narrative (prose)
// elements.
const textBlockMarker = "TextBlock"

// Buckets is the completeness partition of everything observed in an
// archive. Raw always holds every element; TextBlocks and Unmapped are
// disjoint views keyed by local name.
type Buckets struct {
	Raw        map[string]string
	TextBlocks map[string]string
	Unmapped   map[string]string
}

// Categorize partitions every observed element id into the three buckets:
//
//   - Raw: element id -> value for everything, the audit surface. No
//     observed data is ever lost, mapped or not.
//   - TextBlocks: narrative elements, keyed by local name.
//   - Unmapped: elements outside the field table (and not narrative),
//     keyed by local name. These flag concepts a future field table entry
//     could cover.
//
// When an element id repeats across contexts the later row wins, matching
// the exploration-surface semantics of the raw bucket.
func Categorize(files []SourceFile, mapped map[string]struct{}) Buckets {
	b := Buckets{
		Raw:        make(map[string]string),
		TextBlocks: make(map[string]string),
		Unmapped:   make(map[string]string),
	}

	for _, f := range files {
		for _, row := range f.Rows {
			if row.ElementID == "" {
				continue
			}
			b.Raw[row.ElementID] = row.Value

			if strings.Contains(row.ElementID, textBlockMarker) {
				b.TextBlocks[LocalName(row.ElementID)] = row.Value
			} else if _, ok := mapped[row.ElementID]; !ok {
				b.Unmapped[LocalName(row.ElementID)] = row.Value
			}
		}
	}
	return b
}
