package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
	"github.com/ben10dynartio/countryinfo/pkg/reconciler"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// WriteLua renders the generated data section for the wiki templating
// module: a country code list, one sub-table per property mapping code to
// string-quoted value, and the generation date. Property order follows the
// descriptor list; rows are sorted by display name.
func WriteLua(w io.Writer, t *reconciler.Table, props []wikidata.Property, generated time.Time) error {
	records := t.SortedByName()

	var b strings.Builder
	b.WriteString("-- begin data section\n")
	b.WriteString("data = {\n\n")

	codes := make([]string, 0, len(records))
	for _, rec := range records {
		codes = append(codes, `"`+rec.Code+`"`)
	}
	b.WriteString("    countrylist = {" + strings.Join(codes, ", ") + "},\n\n")

	columns := make([]string, 0, len(props)+len(derivedColumns))
	for _, p := range props {
		if p.Name == wikidata.CodePropertyName {
			continue
		}
		columns = append(columns, p.Name)
	}
	columns = append(columns, derivedColumns...)

	for _, column := range columns {
		entries := make([]string, 0, len(records))
		for _, rec := range records {
			if rec.Code == "" {
				continue
			}
			entries = append(entries, fmt.Sprintf(`%s = "%s"`, rec.Code, formattedValue(rec, column)))
		}
		b.WriteString("    " + column + " = {" + strings.Join(entries, ", ") + "},\n\n")
	}

	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "last_update = %q\n", generated.Format("2006-01-02"))
	b.WriteString("-- end data section")

	_, err := io.WriteString(w, b.String())
	return errors.WrapIO("write", "lua data section", err)
}
