package wikidata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicQuery(t *testing.T) {
	props := []Property{
		{Name: "codeiso2", PID: 297, Kind: KindScalar},
		{Name: "area_km2", PID: 2046, Kind: KindScalar},
		{Name: "flag_image", PID: 41, Kind: KindScalar},
	}

	q := BasicQuery(props)

	assert.Contains(t, q, "SELECT distinct ?country ?countryLabel ?wikipedia ?codeiso2 ?area_km2 ?flag_image")
	assert.Contains(t, q, "OPTIONAL { ?country wdt:P297 ?codeiso2. }")
	assert.Contains(t, q, "OPTIONAL { ?country wdt:P2046 ?area_km2. }")
	assert.Contains(t, q, "OPTIONAL { ?country wdt:P41 ?flag_image. }")

	// Sovereign states only, historical countries excluded, English Wikipedia joined.
	assert.Contains(t, q, "ps:P31 wd:Q3624078")
	assert.Contains(t, q, "filter not exists { ?country p:P31/ps:P31 wd:Q3024240 }")
	assert.Contains(t, q, "schema:isPartOf <https://en.wikipedia.org/>")
	assert.Contains(t, q, `wikibase:language "en"`)
	assert.True(t, strings.HasSuffix(q, "order by ?countryLabel"))
}

func TestBasicQueryLabelSubstitution(t *testing.T) {
	props := []Property{{Name: "currency", PID: 38, Kind: KindScalar, Label: true}}

	q := BasicQuery(props)

	// The select list reads the label column while the clause binds the raw variable.
	assert.Contains(t, q, "?currencyLabel WHERE")
	assert.Contains(t, q, "OPTIONAL { ?country wdt:P38 ?currency. }")
}

func TestListQuery(t *testing.T) {
	q := ListQuery(Property{Name: "languages", PID: 37, Kind: KindList, Label: true})

	assert.Contains(t, q, "SELECT distinct ?country ?countryLabel ?codeiso2 ?languagesLabel")
	assert.Contains(t, q, "OPTIONAL { ?country wdt:P37 ?languages. }")
	// The country code always rides along as the join key.
	assert.Contains(t, q, "OPTIONAL { ?country wdt:P297 ?codeiso2. }")
	assert.Contains(t, q, "ps:P31 wd:Q3624078")
}

func TestDatedQuery(t *testing.T) {
	q := DatedQuery(Property{Name: "population", PID: 1082, Dated: true, Kind: KindScalar})

	assert.Contains(t, q, "SELECT ?country ?population ?date_population ?codeiso2")
	assert.Contains(t, q, "?country p:P1082 ?population_statement.")
	assert.Contains(t, q, "?population_statement ps:P1082 ?population;")
	assert.Contains(t, q, "pq:P585 ?date_population.")
	assert.True(t, strings.HasSuffix(q, "ORDER BY ?codeiso2 DESC(?date_population)"))
}

func TestDateVariable(t *testing.T) {
	assert.Equal(t, "date_gdp_bd", DateVariable(Property{Name: "gdp_bd"}))
}
