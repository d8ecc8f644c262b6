// Package cmd - normalize command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"proxyprice/core/pipeline"
	"proxyprice/internal/config"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize raw data into the published dataset",
	Long: `Read the raw provider and pricing files, derive comparable
$/GB figures and provider metadata, and write the published dataset.

Examples:
  proxyprice normalize`,
	RunE: runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	providers, pricing, err := pipeline.NewRunner(cfg).Normalize()
	if err != nil {
		return err
	}
	fmt.Printf("Normalized %d pricing records\n", pricing)
	fmt.Printf("Enriched %d providers\n", providers)
	fmt.Printf("Saved to %s\n", cfg.Output.DataDir)
	return nil
}
