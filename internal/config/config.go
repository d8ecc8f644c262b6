// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"proxyprice/internal/errors"
	"proxyprice/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Input contains ingestion configuration
	Input InputConfig `json:"input" mapstructure:"input"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// InputConfig contains ingestion-related settings
type InputConfig struct {
	// CSVPath is the scraped pricing spreadsheet export
	CSVPath string `json:"csv_path" mapstructure:"csv_path" validate:"required"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// RawDir receives the raw parsed documents
	RawDir string `json:"raw_dir" mapstructure:"raw_dir" validate:"required"`

	// DataDir receives the normalized frontend dataset
	DataDir string `json:"data_dir" mapstructure:"data_dir" validate:"required"`
}

// RawProvidersPath is the raw provider document location
func (c *Config) RawProvidersPath() string {
	return filepath.Join(c.Output.RawDir, "providers_raw.json")
}

// RawPricingPath is the raw pricing document location
func (c *Config) RawPricingPath() string {
	return filepath.Join(c.Output.RawDir, "pricing_raw.json")
}

// ProvidersPath is the published provider document location
func (c *Config) ProvidersPath() string {
	return filepath.Join(c.Output.DataDir, "providers.json")
}

// PricingPath is the published pricing document location
func (c *Config) PricingPath() string {
	return filepath.Join(c.Output.DataDir, "pricing.json")
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			CSVPath: filepath.Join("docs", "Price.csv"),
		},
		Output: OutputConfig{
			RawDir:  filepath.Join("data", "raw"),
			DataDir: filepath.Join("front", "src", "data"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist. Supported formats are whatever viper reads
// from the file extension (json, yaml, toml).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Config("reading config file", err).WithContext("path", path)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("decoding config file", err).WithContext("path", path)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its declared constraints
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Config("invalid configuration", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
