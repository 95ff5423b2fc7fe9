// Package wikidata builds SPARQL queries for country metadata, executes them
// against the Wikidata query service, and flattens the response envelope into
// per-row bindings. The property descriptor list is the sole configuration
// point of the whole pipeline: adding, removing, or reclassifying a property
// changes which queries run and how reconciliation treats the results.
package wikidata

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
)

// Kind classifies how many values a property may carry per country.
type Kind string

const (
	// KindScalar properties contribute at most one value per country and are
	// fetched together in a single batch query.
	KindScalar Kind = "scalar"
	// KindList properties may return several rows per country and are fetched
	// one query per property, with a per-property reduction applied afterward.
	KindList Kind = "list"
)

// Property describes one Wikidata attribute to fetch and how to reduce
// multi-valued results. PID is the numeric Wikidata property id (P297 -> 297).
type Property struct {
	Name  string `yaml:"name" json:"name"`
	PID   int    `yaml:"pid" json:"pid"`
	Dated bool   `yaml:"dated,omitempty" json:"dated"`
	Kind  Kind   `yaml:"kind,omitempty" json:"kind"`
	Label bool   `yaml:"label,omitempty" json:"label"`
}

// Variable returns the SPARQL result variable holding the property's value.
// Label properties read the human-readable label column instead of the raw
// entity URI.
func (p Property) Variable() string {
	if p.Label {
		return p.Name + "Label"
	}
	return p.Name
}

// Validate checks that the descriptor can drive query generation.
func (p Property) Validate() error {
	if p.Name == "" {
		return errors.NewValidationError("name", p.Name, "property name must not be empty")
	}
	if p.PID <= 0 {
		return errors.NewValidationError("pid", p.PID, "property id must be a positive Wikidata P-number")
	}
	switch p.Kind {
	case KindScalar, KindList:
	default:
		return errors.NewValidationError("kind", string(p.Kind), `kind must be "scalar" or "list"`)
	}
	return nil
}

// CodePropertyName is the name of the country code property, the canonical
// join key across every per-property table.
const CodePropertyName = "codeiso2"

// DefaultProperties returns the property set feeding the wiki data module.
func DefaultProperties() []Property {
	return []Property{
		{Name: CodePropertyName, PID: 297, Kind: KindScalar},
		{Name: "continent", PID: 30, Kind: KindList, Label: true},
		{Name: "area_km2", PID: 2046, Kind: KindScalar},
		{Name: "population", PID: 1082, Dated: true, Kind: KindScalar},
		{Name: "gdp_bd", PID: 2131, Dated: true, Kind: KindScalar},
		{Name: "languages", PID: 37, Kind: KindList, Label: true},
		{Name: "flag_image", PID: 41, Kind: KindScalar},
		{Name: "locator_map", PID: 242, Kind: KindList},
		{Name: "osm_rel_id", PID: 402, Kind: KindScalar},
	}
}

// LoadProperties reads a property descriptor list from a YAML file.
// Descriptors without an explicit kind default to scalar.
func LoadProperties(path string) ([]Property, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var props []Property
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	for i := range props {
		if props[i].Kind == "" {
			props[i].Kind = KindScalar
		}
		if err := props[i].Validate(); err != nil {
			return nil, err
		}
	}

	if len(props) == 0 {
		return nil, errors.NewValidationError("properties", path, "descriptor list is empty")
	}

	return props, nil
}

// Scalars returns the properties fetched by the batch query: not dated and
// not list-valued.
func Scalars(props []Property) []Property {
	var out []Property
	for _, p := range props {
		if !p.Dated && p.Kind != KindList {
			out = append(out, p)
		}
	}
	return out
}

// Lists returns the list-valued properties, each fetched by its own query.
func Lists(props []Property) []Property {
	var out []Property
	for _, p := range props {
		if p.Kind == KindList {
			out = append(out, p)
		}
	}
	return out
}

// DatedProps returns the time-qualified properties, each fetched by its own
// statement-node query.
func DatedProps(props []Property) []Property {
	var out []Property
	for _, p := range props {
		if p.Dated {
			out = append(out, p)
		}
	}
	return out
}
