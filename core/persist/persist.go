// Package persist reads and writes the dataset files. Raw files
// carry bare record arrays; published files wrap the array with
// last_updated and total_count metadata. Loads accept either shape so
// that a published file can be fed back through the pipeline.
package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"proxyprice/core/types"
	"proxyprice/internal/errors"
)

// LoadRaw decodes a JSON file into untyped data for schema validation
func LoadRaw(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Structural("failed to read data file", err).
			WithContext("path", path)
	}
	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Structural("data file is not valid JSON", err).
			WithContext("path", path)
	}
	return data, nil
}

// LoadProviders reads a providers file in either document shape
func LoadProviders(path string) ([]types.Provider, error) {
	var providers []types.Provider
	if err := loadRecords(path, &providers, func(data []byte) (json.RawMessage, error) {
		var doc struct {
			Providers json.RawMessage `json:"providers"`
		}
		err := json.Unmarshal(data, &doc)
		return doc.Providers, err
	}); err != nil {
		return nil, err
	}
	return providers, nil
}

// LoadPricing reads a pricing file in either document shape
func LoadPricing(path string) ([]types.PricingRecord, error) {
	var records []types.PricingRecord
	if err := loadRecords(path, &records, func(data []byte) (json.RawMessage, error) {
		var doc struct {
			Pricing json.RawMessage `json:"pricing"`
		}
		err := json.Unmarshal(data, &doc)
		return doc.Pricing, err
	}); err != nil {
		return nil, err
	}
	return records, nil
}

func loadRecords(path string, out any, unwrap func([]byte) (json.RawMessage, error)) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Structural("failed to read data file", err).
			WithContext("path", path)
	}

	records := json.RawMessage(content)
	var probe any
	if err := json.Unmarshal(content, &probe); err != nil {
		return errors.Structural("data file is not valid JSON", err).
			WithContext("path", path)
	}
	if _, wrapped := probe.(map[string]any); wrapped {
		inner, err := unwrap(content)
		if err != nil || inner == nil {
			return errors.Structural("data file has no record array", err).
				WithContext("path", path)
		}
		records = inner
	}

	if err := json.Unmarshal(records, out); err != nil {
		return errors.Structural("failed to decode records", err).
			WithContext("path", path)
	}
	return nil
}

// SaveRawProviders writes the raw provider array
func SaveRawProviders(path string, providers []types.Provider) error {
	return writeJSON(path, emptyAsList(providers))
}

// SaveRawPricing writes the raw pricing record array
func SaveRawPricing(path string, records []types.PricingRecord) error {
	return writeJSON(path, emptyAsList(records))
}

// SaveProviders writes the published providers document
func SaveProviders(path string, providers []types.Provider) error {
	return writeJSON(path, types.ProvidersDocument{
		Providers:   emptyAsList(providers),
		LastUpdated: time.Now().Format("2006-01-02"),
		TotalCount:  len(providers),
	})
}

// SavePricing writes the published pricing document
func SavePricing(path string, records []types.PricingRecord) error {
	return writeJSON(path, types.PricingDocument{
		Pricing:     emptyAsList(records),
		LastUpdated: time.Now().Format("2006-01-02"),
		TotalCount:  len(records),
	})
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Internal("failed to create output directory", err).
			WithContext("path", path)
	}
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode data file", err).
			WithContext("path", path)
	}
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Internal("failed to write data file", err).
			WithContext("path", path)
	}
	return nil
}

// emptyAsList keeps empty datasets as [] rather than null in output
func emptyAsList[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
