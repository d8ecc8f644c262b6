// Package cmd - parse command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"proxyprice/core/pipeline"
	"proxyprice/internal/config"
)

var csvPath string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the survey CSV into raw JSON files",
	Long: `Parse the provider pricing survey CSV and write the raw
provider and pricing files without normalizing them.

Examples:
  proxyprice parse
  proxyprice parse --csv docs/Price.csv`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&csvPath, "csv", "", "survey CSV path (overrides config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if csvPath != "" {
		cfg.Input.CSVPath = csvPath
	}

	result, err := pipeline.NewRunner(cfg).Ingest()
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d providers\n", len(result.Providers))
	fmt.Printf("Parsed %d pricing records\n", len(result.Pricing))
	fmt.Printf("Saved to %s\n", cfg.Output.RawDir)
	return nil
}
