// Package export renders the reconciled country table: raw and formatted CSV
// tables plus the Lua data module text consumed by the wiki templating
// module. Formatting is applied at render time only; the canonical fetched
// values in the table are never mutated.
package export

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ben10dynartio/countryinfo/pkg/reconciler"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// printer renders thousands separators in the English locale.
var printer = message.NewPrinter(language.English)

// gdpDivisor converts base currency units to billions.
const gdpDivisor = 1e9

// FormatArea formats an area value: values >= 100 are rounded to the nearest
// whole number and rendered with thousands separators; smaller values keep
// their decimal precision. A trailing ".0" never survives formatting.
func FormatArea(s string) string {
	if s == "" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if v >= 100 {
		return printer.Sprintf("%d", int64(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPopulation formats a population count as an integer with thousands
// separators. Empty or zero values render as an empty string.
func FormatPopulation(s string) string {
	if s == "" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if v == 0 {
		return ""
	}
	return printer.Sprintf("%d", int64(v))
}

// FormatGDP converts a GDP value in base currency units to billions with one
// decimal place. Empty values render as an empty string.
func FormatGDP(s string) string {
	if s == "" {
		return ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%.1f", v/gdpDivisor)
}

// FormatValue applies the render-time rule for a property value. Properties
// without a numeric or image rule pass through unchanged.
func FormatValue(name, value string) string {
	switch name {
	case "area_km2":
		return FormatArea(value)
	case "population":
		return FormatPopulation(value)
	case "gdp_bd":
		return FormatGDP(value)
	case "flag_image":
		return wikidata.CleanCommonsFile(value)
	default:
		return value
	}
}

// formattedValue resolves and formats one output column for a record.
// Beyond the fetched properties, three derived columns exist: the display
// name, the Wikipedia article title, and the short Wikidata identifier.
func formattedValue(rec *reconciler.Record, name string) string {
	switch name {
	case "name":
		return rec.Name
	case "wikipedia":
		return wikidata.CleanWikipediaTitle(rec.Wikipedia)
	case "wikidata_id":
		return wikidata.EntityID(rec.Entity)
	default:
		return FormatValue(name, rec.Value(name))
	}
}
