// Package dataset defines the merged agriculture/rainfall table and its
// local persistence (SQLite store, CSV codecs).
package dataset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MissingYear marks rows whose source year could not be parsed.
// Aggregations that group or window by year skip these rows.
const MissingYear = 0

// Record is one row of the merged table.
type Record struct {
	State            string
	District         string
	Year             int
	Season           string
	Crop             string
	ProductionTonnes float64
	RainfallMM       float64
}

// HasYear reports whether the row carries a usable year.
func (r Record) HasYear() bool {
	return r.Year != MissingYear
}

// Table is the read-only merged dataset. It is constructed once (by the
// store or a CSV load) and passed by reference; nothing mutates it after
// construction.
type Table struct {
	rows []Record
}

// NewTable wraps rows in a read-only handle. The caller must not modify
// the slice afterwards.
func NewTable(rows []Record) *Table {
	return &Table{rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th record.
func (t *Table) Row(i int) Record {
	return t.rows[i]
}

// DistinctStates returns the distinct non-empty state names in order of
// first appearance.
func (t *Table) DistinctStates() []string {
	return t.distinct(func(r Record) string { return r.State })
}

// DistinctCrops returns the distinct non-empty crop names in order of
// first appearance.
func (t *Table) DistinctCrops() []string {
	return t.distinct(func(r Record) string { return r.Crop })
}

func (t *Table) distinct(field func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rows {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// TitleCase converts a name to its canonical title-cased, trimmed form,
// e.g. "tamil nadu " -> "Tamil Nadu".
func TitleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
