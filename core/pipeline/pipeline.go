// Package pipeline orchestrates the full dataset build: ingest the
// survey CSV into raw files, normalize and aggregate the records into
// the published documents, then validate the published files against
// the frontend contract.
package pipeline

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"proxyprice/core/ingest"
	"proxyprice/core/normalize"
	"proxyprice/core/persist"
	"proxyprice/core/schema"
	"proxyprice/internal/config"
	"proxyprice/internal/errors"
	"proxyprice/internal/logging"
)

// StepResult records one executed pipeline step
type StepResult struct {
	Name     string        `json:"name"`
	Success  bool          `json:"success"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// Summary describes one pipeline run
type Summary struct {
	RunID     string        `json:"run_id"`
	Steps     []StepResult  `json:"steps"`
	Providers int           `json:"providers"`
	Pricing   int           `json:"pricing_records"`
	Duration  time.Duration `json:"duration"`
	Success   bool          `json:"success"`
}

// Runner executes pipeline steps against one configuration
type Runner struct {
	cfg *config.Config

	// SkipValidation leaves the published files unvalidated. Raw
	// development datasets may carry known gaps worth publishing
	// anyway.
	SkipValidation bool
}

// NewRunner returns a Runner for cfg
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes the full pipeline. The summary is returned even when a
// step fails so callers can report partial progress.
func (r *Runner) Run() (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	start := time.Now()
	logging.Info("starting pipeline run", zap.String("run_id", summary.RunID))

	steps := []struct {
		name string
		fn   func(*Summary) error
	}{
		{"ingest", r.runIngest},
		{"normalize", r.runNormalize},
	}
	if !r.SkipValidation {
		steps = append(steps, struct {
			name string
			fn   func(*Summary) error
		}{"validate", r.runValidate})
	}

	var failed error
	for _, step := range steps {
		result := StepResult{Name: step.name}
		stepStart := time.Now()
		err := step.fn(summary)
		result.Duration = time.Since(stepStart)
		if err != nil {
			result.Error = err.Error()
			summary.Steps = append(summary.Steps, result)
			logging.Error("pipeline step failed",
				zap.String("run_id", summary.RunID),
				zap.String("step", step.name),
				zap.Duration("duration", result.Duration),
				zap.Error(err))
			failed = err
			break
		}
		result.Success = true
		summary.Steps = append(summary.Steps, result)
		logging.Info("pipeline step completed",
			zap.String("run_id", summary.RunID),
			zap.String("step", step.name),
			zap.Duration("duration", result.Duration))
	}

	summary.Duration = time.Since(start)
	summary.Success = failed == nil
	if failed != nil {
		return summary, failed
	}
	logging.Info("pipeline run completed",
		zap.String("run_id", summary.RunID),
		zap.Int("providers", summary.Providers),
		zap.Int("pricing_records", summary.Pricing),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// Ingest parses the survey CSV and writes the raw data files
func (r *Runner) Ingest() (*ingest.Result, error) {
	result, err := ingest.ParseCSV(r.cfg.Input.CSVPath)
	if err != nil {
		return nil, err
	}
	if err := persist.SaveRawProviders(r.cfg.RawProvidersPath(), result.Providers); err != nil {
		return nil, err
	}
	if err := persist.SaveRawPricing(r.cfg.RawPricingPath(), result.Pricing); err != nil {
		return nil, err
	}
	return result, nil
}

// Normalize reads the raw files and writes the published documents
func (r *Runner) Normalize() (providers int, pricing int, err error) {
	rawProviders, err := persist.LoadProviders(r.cfg.RawProvidersPath())
	if err != nil {
		return 0, 0, err
	}
	rawPricing, err := persist.LoadPricing(r.cfg.RawPricingPath())
	if err != nil {
		return 0, 0, err
	}

	records := normalize.Records(rawPricing)
	enriched := normalize.Providers(rawProviders, records)
	normalize.SortProviders(enriched)

	if err := persist.SaveProviders(r.cfg.ProvidersPath(), enriched); err != nil {
		return 0, 0, err
	}
	if err := persist.SavePricing(r.cfg.PricingPath(), records); err != nil {
		return 0, 0, err
	}

	comparable := 0
	for _, rec := range records {
		if rec.Comparable {
			comparable++
		}
	}
	logging.Info("normalized pricing records",
		zap.Int("records", len(records)),
		zap.Int("comparable", comparable),
		zap.Int("alternative_models", len(records)-comparable))
	return len(enriched), len(records), nil
}

// Validate checks the published documents against the frontend
// contract and cross-references provider IDs between them
func (r *Runner) Validate() error {
	providersData, err := persist.LoadRaw(r.cfg.ProvidersPath())
	if err != nil {
		return err
	}
	pricingData, err := persist.LoadRaw(r.cfg.PricingPath())
	if err != nil {
		return err
	}

	// Both files are checked even when the first fails, so one run
	// reports every broken file
	providersResult, providersErr := schema.ValidateProvidersData(providersData)
	pricingResult, pricingErr := schema.ValidatePricingData(pricingData)
	if providersErr != nil || pricingErr != nil {
		wrapped := errors.New(errors.TypeSchema, "published dataset failed validation")
		if providersErr != nil {
			wrapped.WithContext("providers", providersErr.Error())
			logging.Error("providers file failed validation",
				zap.String("path", r.cfg.ProvidersPath()),
				zap.Error(providersErr))
		}
		if pricingErr != nil {
			wrapped.WithContext("pricing", pricingErr.Error())
			logging.Error("pricing file failed validation",
				zap.String("path", r.cfg.PricingPath()),
				zap.Error(pricingErr))
		}
		return wrapped
	}

	// Linkage findings are logged, not fatal
	report := schema.CrossReference(providersData, pricingData)
	if len(report.OrphanedPricing) > 0 {
		logging.Warn("pricing records reference unknown providers",
			zap.Strings("provider_ids", report.OrphanedPricing))
	}
	if report.ProvidersWithoutPricing > 0 {
		logging.Info("providers without pricing data",
			zap.Int("count", report.ProvidersWithoutPricing))
	}

	logging.Info("validation passed",
		zap.Int("providers", providersResult.Count),
		zap.Int("pricing_records", pricingResult.Count))
	return nil
}

func (r *Runner) runIngest(summary *Summary) error {
	_, err := r.Ingest()
	return err
}

func (r *Runner) runNormalize(summary *Summary) error {
	providers, pricing, err := r.Normalize()
	if err != nil {
		return err
	}
	summary.Providers = providers
	summary.Pricing = pricing
	return nil
}

func (r *Runner) runValidate(summary *Summary) error {
	return r.Validate()
}
