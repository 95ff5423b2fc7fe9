package export

import (
	"github.com/ben10dynartio/countryinfo/pkg/reconciler"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// testProperties is a reduced descriptor set shared by the export tests.
func testProperties() []wikidata.Property {
	return []wikidata.Property{
		{Name: "codeiso2", PID: 297, Kind: wikidata.KindScalar},
		{Name: "continent", PID: 30, Kind: wikidata.KindList, Label: true},
		{Name: "population", PID: 1082, Dated: true, Kind: wikidata.KindScalar},
	}
}

// testTable builds a two-country reconciled table.
func testTable() *reconciler.Table {
	rows := []wikidata.Binding{
		{
			"country":      "http://www.wikidata.org/entity/Q40",
			"countryLabel": "Austria",
			"wikipedia":    "https://en.wikipedia.org/wiki/Austria",
			"codeiso2":     "AT",
		},
		{
			"country":      "http://www.wikidata.org/entity/Q228",
			"countryLabel": "Andorra",
			"wikipedia":    "https://en.wikipedia.org/wiki/Andorra",
			"codeiso2":     "AD",
		},
	}

	table := reconciler.NewTable(rows)
	table.MergeColumn("continent", map[string]string{"AT": "Europe", "AD": "Europe"})
	table.MergeColumn("population", map[string]string{"AT": "9100000", "AD": "77000"})
	return table
}
