package wikidata

import (
	"fmt"
	"strings"
)

// Entity classes and qualifiers used by every query. Countries are sovereign
// states (Q3624078) that are not also tagged as historical countries
// (Q3024240); each one is joined to its English Wikipedia article.
const (
	sovereignStateQID  = "Q3624078"
	historicalStateQID = "Q3024240"
	pointInTimePID     = 585
	wikipediaDomain    = "https://en.wikipedia.org/"
	labelServiceClause = `SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }`
)

// BasicQuery builds the scalar batch query: one OPTIONAL clause per property,
// producing at most one row per country. Deduplication of multi-statement
// properties happens downstream, not in the query.
func BasicQuery(props []Property) string {
	var selectVars, optionals []string
	for _, p := range props {
		selectVars = append(selectVars, "?"+p.Variable())
		optionals = append(optionals, fmt.Sprintf("OPTIONAL { ?country wdt:P%d ?%s. }", p.PID, p.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT distinct ?country ?countryLabel ?wikipedia %s WHERE {\n", strings.Join(selectVars, " "))
	b.WriteString("  ?country p:P31 ?country_instance_of_statement .\n")
	fmt.Fprintf(&b, "  ?country_instance_of_statement ps:P31 wd:%s .\n", sovereignStateQID)
	b.WriteString("  ?country ^schema:about ?wikipedia .\n")
	fmt.Fprintf(&b, "  ?wikipedia schema:isPartOf <%s> .\n", wikipediaDomain)
	fmt.Fprintf(&b, "  filter not exists { ?country p:P31/ps:P31 wd:%s }\n", historicalStateQID)
	for _, opt := range optionals {
		b.WriteString("  " + opt + "\n")
	}
	b.WriteString("  " + labelServiceClause + "\n")
	b.WriteString("} order by ?countryLabel")
	return b.String()
}

// ListQuery builds the per-property query for a list-valued property: the
// property plus the country code, one row per (country, value) pair. Callers
// must expect multiple rows per country.
func ListQuery(prop Property) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT distinct ?country ?countryLabel ?%s ?%s WHERE {\n", CodePropertyName, prop.Variable())
	b.WriteString("  ?country p:P31 ?country_instance_of_statement .\n")
	fmt.Fprintf(&b, "  ?country_instance_of_statement ps:P31 wd:%s .\n", sovereignStateQID)
	fmt.Fprintf(&b, "  filter not exists { ?country p:P31/ps:P31 wd:%s }\n", historicalStateQID)
	fmt.Fprintf(&b, "  OPTIONAL { ?country wdt:P%d ?%s. }\n", prop.PID, prop.Name)
	fmt.Fprintf(&b, "  OPTIONAL { ?country wdt:P297 ?%s. }\n", CodePropertyName)
	b.WriteString("  " + labelServiceClause + "\n")
	b.WriteString("} order by ?countryLabel")
	return b.String()
}

// DatedQuery builds the per-property query for a time-qualified property.
// It joins the statement node to extract both the value and its P585
// point-in-time qualifier, ordered by code then date descending so the most
// recent statement comes first within each country.
func DatedQuery(prop Property) string {
	name := prop.Name
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT ?country ?%s ?date_%s ?%s WHERE {\n", name, name, CodePropertyName)
	b.WriteString("  ?country p:P31 ?country_instance_of_statement .\n")
	fmt.Fprintf(&b, "  ?country_instance_of_statement ps:P31 wd:%s .\n", sovereignStateQID)
	fmt.Fprintf(&b, "  filter not exists { ?country p:P31/ps:P31 wd:%s }\n", historicalStateQID)
	fmt.Fprintf(&b, "  OPTIONAL { ?country wdt:P297 ?%s. }\n", CodePropertyName)
	b.WriteString("  OPTIONAL {\n")
	fmt.Fprintf(&b, "    ?country p:P%d ?%s_statement.\n", prop.PID, name)
	fmt.Fprintf(&b, "    ?%s_statement ps:P%d ?%s;\n", name, prop.PID, name)
	fmt.Fprintf(&b, "                 pq:P%d ?date_%s.\n", pointInTimePID, name)
	b.WriteString("  }\n")
	b.WriteString("  " + labelServiceClause + "\n")
	fmt.Fprintf(&b, "} ORDER BY ?%s DESC(?date_%s)", CodePropertyName, name)
	return b.String()
}

// DateVariable returns the result variable holding the point-in-time
// qualifier of a dated property.
func DateVariable(prop Property) string {
	return "date_" + prop.Name
}
