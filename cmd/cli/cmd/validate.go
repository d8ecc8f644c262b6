// Package cmd - validate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"proxyprice/core/pipeline"
	"proxyprice/internal/config"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the published dataset files",
	Long: `Check the published provider and pricing files against the
frontend contract and cross-reference provider IDs between them.

Examples:
  proxyprice validate`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := pipeline.NewRunner(config.Get()).Validate(); err != nil {
		return err
	}
	fmt.Println("Validation passed")
	return nil
}
