// Package reconciler merges the per-property result sets fetched from the
// query service into a single row-per-country table keyed by ISO2 code.
// Conflict resolution is per property kind: first-wins for scalars,
// concatenation for languages, score ranking for locator maps, and
// latest-date-wins for time-qualified facts.
package reconciler

import (
	"sort"

	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// Record holds the resolved values for one country. Identity fields are
// explicit; property values are attached by name during the merge pass.
// Every value is a string, possibly empty; numeric and date parsing is
// formatting-only and never mutates the stored value.
type Record struct {
	Code      string // ISO2 country code, unique across the table
	Entity    string // full Wikidata entity URI
	Name      string // English display label
	Wikipedia string // English Wikipedia article URI

	values map[string]string
}

// Value returns the resolved value for a property name, or "" when the
// property was never attached or had no value for this country.
func (r *Record) Value(name string) string {
	if name == wikidata.CodePropertyName {
		return r.Code
	}
	return r.values[name]
}

// setValue attaches a property value to the record.
func (r *Record) setValue(name, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[name] = value
}

// Table is the reconciled row-per-country collection. Records are kept in
// code order; rendering sorts by display name.
type Table struct {
	records []*Record
	byCode  map[string]*Record
}

// NewTable builds a table from base-pass bindings: rows with an empty
// country code are discarded, and the first row per code wins (source
// order is the deterministic tie-break).
func NewTable(rows []wikidata.Binding) *Table {
	t := &Table{byCode: make(map[string]*Record)}
	for _, row := range rows {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		if _, seen := t.byCode[code]; seen {
			continue
		}
		rec := &Record{
			Code:      code,
			Entity:    row.Get("country"),
			Name:      row.Get("countryLabel"),
			Wikipedia: row.Get("wikipedia"),
		}
		t.byCode[code] = rec
		t.records = append(t.records, rec)
	}
	sort.Slice(t.records, func(i, j int) bool { return t.records[i].Code < t.records[j].Code })
	return t
}

// Len returns the number of countries in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the table rows in code order.
func (t *Table) Records() []*Record {
	return t.records
}

// SortedByName returns the table rows sorted by display name, the order
// used for rendered output.
func (t *Table) SortedByName() []*Record {
	out := make([]*Record, len(t.records))
	copy(out, t.records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the record for a country code.
func (t *Table) Lookup(code string) (*Record, bool) {
	rec, ok := t.byCode[code]
	return rec, ok
}

// Codes returns all country codes in code order.
func (t *Table) Codes() []string {
	codes := make([]string, len(t.records))
	for i, rec := range t.records {
		codes[i] = rec.Code
	}
	return codes
}

// AttachScalars copies the base-pass scalar values onto each record.
// The code property itself is identity, not a value column.
func (t *Table) AttachScalars(rows []wikidata.Binding, props []wikidata.Property) {
	byCode := make(map[string]wikidata.Binding)
	for _, row := range rows {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		if _, seen := byCode[code]; !seen {
			byCode[code] = row
		}
	}
	for _, rec := range t.records {
		row := byCode[rec.Code]
		for _, p := range props {
			if p.Name == wikidata.CodePropertyName {
				continue
			}
			rec.setValue(p.Name, row.Get(p.Variable()))
		}
	}
}

// MergeColumn attaches one resolved property column by joining on country
// code. Codes absent from the resolved mapping receive an empty string.
func (t *Table) MergeColumn(name string, values map[string]string) {
	for _, rec := range t.records {
		rec.setValue(name, values[rec.Code])
	}
}
