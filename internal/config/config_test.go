package config

import (
	"os"
	"path/filepath"
	"testing"

	"proxyprice/internal/errors"
)

// TestDefaultIsValid verifies the default configuration passes its own
// validation
func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestLoadMissingFileFallsBack verifies a nonexistent path yields
// defaults rather than an error
func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.CSVPath != Default().Input.CSVPath {
		t.Errorf("csv path = %q, want default", cfg.Input.CSVPath)
	}
}

// TestSaveLoadRoundTrip verifies a saved config reads back with its
// overrides applied over the defaults
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Input.CSVPath = "survey/latest.csv"
	cfg.Logging.Level = "debug"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Input.CSVPath != "survey/latest.csv" {
		t.Errorf("csv path = %q, want survey/latest.csv", loaded.Input.CSVPath)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", loaded.Logging.Level)
	}
	if loaded.Output.RawDir != Default().Output.RawDir {
		t.Errorf("raw dir = %q, want default", loaded.Output.RawDir)
	}
}

// TestLoadRejectsMalformedFile verifies unparseable config files fail
// as config errors
func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error type = %v, want config error", err)
	}
}

// TestValidateRejectsEmptyPaths verifies required fields are enforced
func TestValidateRejectsEmptyPaths(t *testing.T) {
	cfg := Default()
	cfg.Output.DataDir = ""
	if err := Validate(cfg); err == nil {
		t.Error("expected error for empty data dir")
	}
}
