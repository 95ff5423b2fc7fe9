package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
	"github.com/ben10dynartio/countryinfo/pkg/export"
	"github.com/ben10dynartio/countryinfo/pkg/logging"
	"github.com/ben10dynartio/countryinfo/pkg/reconciler"
	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// Output file names, kept stable so the wiki update procedure stays the same.
const (
	rawCSVFile       = "countries_wikidata_brut.csv"
	formattedCSVFile = "countries_wikidata_formated.csv"
	luaFile          = "countries_wikidata_lua.txt"
)

// newGenerateCommand creates the generate command.
func newGenerateCommand() *cobra.Command {
	var (
		endpoint       string
		propertiesFile string
		outputDir      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch, reconcile, and render the country table",
		Long: `Generate runs the full batch pipeline: it executes the scalar batch
query plus one query per list-valued and per dated property, reconciles the
results into a row-per-country table keyed by ISO2 code, and writes three
artifacts: a raw CSV export, a formatted CSV export, and the Lua data module
text. Each artifact is also echoed to standard output.`,
		Example: `  countryinfo generate
  countryinfo generate --output-dir ./out --endpoint https://query.wikidata.org/sparql`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logging.Ctx(ctx)

			props, err := loadProperties(propertiesFile)
			if err != nil {
				return err
			}

			if endpoint == "" {
				endpoint = viper.GetString("endpoint")
			}
			client := wikidata.NewClient(wikidata.WithEndpoint(endpoint))
			log.Info().Str("endpoint", client.Endpoint()).Int("properties", len(props)).Msg("Starting batch run")

			table, err := reconciler.New(client, props).Reconcile(ctx)
			if err != nil {
				return err
			}
			log.Info().Int("countries", table.Len()).Msg("Reconciliation complete")

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return errors.WrapIO("create", outputDir, err)
			}

			if err := writeArtifact(filepath.Join(outputDir, rawCSVFile), func(w io.Writer) error {
				return export.WriteRawCSV(w, table, props)
			}); err != nil {
				return err
			}
			if err := writeArtifact(filepath.Join(outputDir, formattedCSVFile), func(w io.Writer) error {
				return export.WriteFormattedCSV(w, table, props)
			}); err != nil {
				return err
			}
			if err := writeArtifact(filepath.Join(outputDir, luaFile), func(w io.Writer) error {
				if err := export.WriteLua(w, table, props, time.Now()); err != nil {
					return err
				}
				_, err := io.WriteString(w, "\n")
				return err
			}); err != nil {
				return err
			}

			log.Info().Str("dir", outputDir).Msg("Artifacts written")
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "SPARQL query service URL (default is the public Wikidata endpoint)")
	cmd.Flags().StringVar(&propertiesFile, "properties", "", "YAML file with property descriptors (default is the built-in set)")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "directory for the generated files")

	return cmd
}

// loadProperties returns the configured descriptor list, either the built-in
// default set or one loaded from a YAML file.
func loadProperties(path string) ([]wikidata.Property, error) {
	if path == "" {
		return wikidata.DefaultProperties(), nil
	}
	return wikidata.LoadProperties(path)
}

// writeArtifact renders one artifact to a file and echoes it to stdout.
func writeArtifact(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := render(io.MultiWriter(f, os.Stdout)); err != nil {
		_ = f.Close()
		return err
	}
	fmt.Println()

	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
