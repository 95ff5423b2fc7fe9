package export

import (
	"encoding/csv"
	"io"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
	"github.com/ben10dynartio/countryinfo/pkg/reconciler"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// identity columns present in every export, ahead of the property columns.
var rawIdentityHeader = []string{wikidata.CodePropertyName, "country", "countryLabel", "wikipedia"}

// derivedColumns are the render-time columns appended to the formatted
// export after the fetched properties.
var derivedColumns = []string{"name", "wikipedia", "wikidata_id"}

// WriteRawCSV writes the diagnostic export: unformatted values exactly as
// fetched, one row per country in code order.
func WriteRawCSV(w io.Writer, t *reconciler.Table, props []wikidata.Property) error {
	cw := csv.NewWriter(w)

	header := append([]string{}, rawIdentityHeader...)
	for _, p := range props {
		if p.Name == wikidata.CodePropertyName {
			continue
		}
		header = append(header, p.Name)
	}
	if err := cw.Write(header); err != nil {
		return errors.WrapIO("write", "raw csv header", err)
	}

	for _, rec := range t.Records() {
		row := []string{rec.Code, rec.Entity, rec.Name, rec.Wikipedia}
		for _, p := range props {
			if p.Name == wikidata.CodePropertyName {
				continue
			}
			row = append(row, rec.Value(p.Name))
		}
		if err := cw.Write(row); err != nil {
			return errors.WrapIO("write", "raw csv row", err)
		}
	}

	cw.Flush()
	return errors.WrapIO("write", "raw csv", cw.Error())
}

// WriteFormattedCSV writes the human-readable export: numeric formatting
// applied, image and page references cleaned, rows sorted by display name.
func WriteFormattedCSV(w io.Writer, t *reconciler.Table, props []wikidata.Property) error {
	cw := csv.NewWriter(w)

	header := []string{wikidata.CodePropertyName}
	for _, p := range props {
		if p.Name == wikidata.CodePropertyName {
			continue
		}
		header = append(header, p.Name)
	}
	header = append(header, derivedColumns...)
	if err := cw.Write(header); err != nil {
		return errors.WrapIO("write", "formatted csv header", err)
	}

	for _, rec := range t.SortedByName() {
		row := []string{rec.Code}
		for _, p := range props {
			if p.Name == wikidata.CodePropertyName {
				continue
			}
			row = append(row, formattedValue(rec, p.Name))
		}
		for _, name := range derivedColumns {
			row = append(row, formattedValue(rec, name))
		}
		if err := cw.Write(row); err != nil {
			return errors.WrapIO("write", "formatted csv row", err)
		}
	}

	cw.Flush()
	return errors.WrapIO("write", "formatted csv", cw.Error())
}
