package reconciler

import (
	"context"

	"github.com/ben10dynartio/countryinfo/pkg/logging"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// Reconciler runs the fetch-and-merge passes against a binding source.
// Everything is sequential: each query executes to completion before the
// next begins, and any query failure aborts the whole run.
type Reconciler struct {
	source wikidata.Querier
	props  []wikidata.Property
}

// New creates a reconciler over the given binding source and property set.
func New(source wikidata.Querier, props []wikidata.Property) *Reconciler {
	return &Reconciler{source: source, props: props}
}

// Properties returns the descriptor list driving this reconciler.
func (r *Reconciler) Properties() []wikidata.Property {
	return r.props
}

// Reconcile executes the four passes and returns the merged table:
//  1. base pass: scalar batch query grouped by country code, first row wins;
//  2. list pass: one query per list property with its reduction applied;
//  3. dated pass: one query per dated property, latest statement wins;
//  4. merge pass: resolved columns joined onto the base table by code.
//
// Countries without a code never appear in the table; a property with zero
// resolved rows yields an empty column.
func (r *Reconciler) Reconcile(ctx context.Context) (*Table, error) {
	log := logging.Ctx(ctx)

	scalars := wikidata.Scalars(r.props)
	log.Info().Int("properties", len(scalars)).Msg("Requesting basic properties")
	rows, err := r.source.Query(ctx, wikidata.BasicQuery(scalars))
	if err != nil {
		return nil, err
	}

	table := NewTable(rows)
	table.AttachScalars(rows, scalars)
	log.Info().Int("countries", table.Len()).Msg("Base table built")

	for _, prop := range wikidata.Lists(r.props) {
		log.Info().Str("property", prop.Name).Msg("Requesting list property")
		listRows, err := r.source.Query(ctx, wikidata.ListQuery(prop))
		if err != nil {
			return nil, err
		}
		table.MergeColumn(prop.Name, r.reduceList(prop, listRows))
	}

	for _, prop := range wikidata.DatedProps(r.props) {
		log.Info().Str("property", prop.Name).Msg("Requesting dated property")
		datedRows, err := r.source.Query(ctx, wikidata.DatedQuery(prop))
		if err != nil {
			return nil, err
		}
		table.MergeColumn(prop.Name, reduceDated(datedRows, prop.Name, wikidata.DateVariable(prop)))
	}

	return table, nil
}

// reduceList applies the property-specific reduction for a list property.
// Properties without a dedicated rule fall back to first-wins grouping.
func (r *Reconciler) reduceList(prop wikidata.Property, rows []wikidata.Binding) map[string]string {
	variable := prop.Variable()
	switch prop.Name {
	case "continent":
		return reduceContinent(rows, variable)
	case "languages":
		return reduceLanguages(rows, variable)
	case "locator_map":
		return reduceLocatorMap(rows, variable)
	default:
		return firstPerCode(rows, variable)
	}
}
