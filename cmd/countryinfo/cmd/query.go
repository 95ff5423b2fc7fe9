package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// newQueryCommand creates the query command, a debugging aid that prints the
// SPARQL text the pipeline would execute.
func newQueryCommand() *cobra.Command {
	var propertiesFile string

	cmd := &cobra.Command{
		Use:   "query [basic|property-name]",
		Short: "Print the SPARQL query for a property",
		Long: `Query prints the SPARQL text that generate would send to the query
service: "basic" prints the scalar batch query; naming a list-valued or
dated property prints its dedicated query.`,
		Example: `  countryinfo query basic
  countryinfo query languages
  countryinfo query population`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			props, err := loadProperties(propertiesFile)
			if err != nil {
				return err
			}

			if args[0] == "basic" {
				fmt.Fprintln(os.Stdout, wikidata.BasicQuery(wikidata.Scalars(props)))
				return nil
			}

			for _, p := range props {
				if p.Name != args[0] {
					continue
				}
				switch {
				case p.Dated:
					fmt.Fprintln(os.Stdout, wikidata.DatedQuery(p))
				case p.Kind == wikidata.KindList:
					fmt.Fprintln(os.Stdout, wikidata.ListQuery(p))
				default:
					fmt.Fprintln(os.Stdout, wikidata.BasicQuery([]wikidata.Property{p}))
				}
				return nil
			}

			return &errors.ValidationError{
				Field:   "property",
				Value:   args[0],
				Message: "not in the configured descriptor list",
			}
		},
	}

	cmd.Flags().StringVar(&propertiesFile, "properties", "", "YAML file with property descriptors (default is the built-in set)")

	return cmd
}
