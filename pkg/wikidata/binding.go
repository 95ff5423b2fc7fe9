package wikidata

// Binding is one result row from a graph query, as a mapping of variable
// name to string value. Variables absent from a row read as the empty
// string, never as an error.
type Binding map[string]string

// Get returns the value bound to name, or "" when the variable is absent.
func (b Binding) Get(name string) string {
	return b[name]
}
