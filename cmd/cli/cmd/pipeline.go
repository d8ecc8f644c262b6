// Package cmd - pipeline command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"proxyprice/core/pipeline"
	"proxyprice/internal/config"
)

var skipValidation bool

// pipelineCmd represents the pipeline command
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full CSV-to-dataset pipeline",
	Long: `Run every pipeline stage in order: parse the survey CSV into
raw JSON, normalize the pricing records and provider metadata, then
validate the published files.

Examples:
  proxyprice pipeline
  proxyprice pipeline --skip-validation`,
	RunE: runPipeline,
}

func init() {
	pipelineCmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "skip the output validation stage")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	runner := pipeline.NewRunner(config.Get())
	runner.SkipValidation = skipValidation

	summary, err := runner.Run()
	printSummary(summary)
	if err != nil {
		os.Exit(1)
	}
	return nil
}

func printSummary(summary *pipeline.Summary) {
	fmt.Println()
	fmt.Println("Pipeline summary")
	fmt.Printf("  Run ID: %s\n", summary.RunID)
	for _, step := range summary.Steps {
		status := "FAILED"
		if step.Success {
			status = "PASSED"
		}
		fmt.Printf("  %-12s %-8s (%.2fs)\n", step.Name, status, step.Duration.Seconds())
	}
	status := "FAILED"
	if summary.Success {
		status = "SUCCESS"
	}
	fmt.Printf("  %-12s %-8s (%.2fs)\n", "total", status, summary.Duration.Seconds())
	if summary.Success {
		fmt.Printf("  Providers: %d, pricing records: %d\n", summary.Providers, summary.Pricing)
	}
}
