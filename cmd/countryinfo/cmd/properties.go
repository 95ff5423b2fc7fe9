package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ben10dynartio/countryinfo/internal/cmd/output"
)

// newPropertiesCommand creates the properties command.
func newPropertiesCommand() *cobra.Command {
	var propertiesFile string

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List the configured property descriptors",
		Long: `Properties shows the descriptor list driving the pipeline. Each
descriptor names a Wikidata property, whether it is time-qualified, whether
it is list-valued, and whether the human-readable label is fetched in place
of the raw value.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			props, err := loadProperties(propertiesFile)
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(outputFormat)
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(format)

			if format == output.FormatJSON || format == output.FormatYAML {
				return formatter.Format(os.Stdout, props)
			}

			data := output.Data{
				Headers: []string{"NAME", "PID", "KIND", "DATED", "LABEL"},
			}
			for _, p := range props {
				data.Rows = append(data.Rows, []string{
					p.Name,
					"P" + strconv.Itoa(p.PID),
					string(p.Kind),
					strconv.FormatBool(p.Dated),
					strconv.FormatBool(p.Label),
				})
			}
			return formatter.Format(os.Stdout, data)
		},
	}

	cmd.Flags().StringVar(&propertiesFile, "properties", "", "YAML file with property descriptors (default is the built-in set)")

	return cmd
}
