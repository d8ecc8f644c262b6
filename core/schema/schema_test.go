package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func wantSchemaError(t *testing.T, err error, path string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a schema error at %s, got nil", path)
	}
	schemaErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if schemaErr.Path != path {
		t.Errorf("error path = %q, want %q", schemaErr.Path, path)
	}
}

// TestValidateTier covers tier field rules
func TestValidateTier(t *testing.T) {
	tests := []struct {
		name     string
		tier     string
		wantPath string
	}{
		{
			name: "complete per-gb tier passes",
			tier: `{"gb": 10, "price_per_gb": 4.5, "total": 45, "pricing_model": "per_gb"}`,
		},
		{
			name: "minimal tier passes",
			tier: `{"pricing_model": "per_proxy", "total": 25, "proxies": 5}`,
		},
		{
			name: "unknown fields pass through",
			tier: `{"gb": 10, "pricing_model": "per_gb", "billing_cycle": "weekly"}`,
		},
		{
			name:     "negative gb rejected",
			tier:     `{"gb": -5, "pricing_model": "per_gb"}`,
			wantPath: "tiers[0].gb",
		},
		{
			name:     "negative total rejected",
			tier:     `{"total": -1, "pricing_model": "per_gb"}`,
			wantPath: "tiers[0].total",
		},
		{
			name:     "bad pricing model rejected",
			tier:     `{"pricing_model": "per_terabyte"}`,
			wantPath: "tiers[0].pricing_model",
		},
		{
			name:     "string gb rejected",
			tier:     `{"gb": "ten", "pricing_model": "per_gb"}`,
			wantPath: "tiers[0].gb",
		},
		{
			name:     "zero ips rejected",
			tier:     `{"ips": 0, "pricing_model": "per_ip"}`,
			wantPath: "tiers[0].ips",
		},
		{
			name:     "fractional threads rejected",
			tier:     `{"threads": 1.5, "pricing_model": "per_thread"}`,
			wantPath: "tiers[0].threads",
		},
		{
			name:     "negative period rejected",
			tier:     `{"period_days": -1, "pricing_model": "per_proxy"}`,
			wantPath: "tiers[0].period_days",
		},
		{
			name:     "non-boolean is_payg rejected",
			tier:     `{"is_payg": "yes", "pricing_model": "per_gb"}`,
			wantPath: "tiers[0].is_payg",
		},
		{
			name:     "non-object rejected",
			tier:     `[1, 2]`,
			wantPath: "tiers[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTier(decode(t, tt.tier), "tiers[0]")
			if tt.wantPath == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			wantSchemaError(t, err, tt.wantPath)
		})
	}
}

// TestValidateProvider covers provider field rules
func TestValidateProvider(t *testing.T) {
	valid := `{
		"id": "bright-data",
		"name": "Bright Data",
		"slug": "bright-data",
		"website_url": "https://brightdata.com",
		"trial_offer": null,
		"proxy_types": ["residential", "datacenter"],
		"cheapest_price_per_gb": 4.5,
		"has_pricing_data": true,
		"pricing_count": 2
	}`

	tests := []struct {
		name     string
		provider string
		wantPath string
	}{
		{
			name:     "complete provider passes",
			provider: valid,
		},
		{
			name:     "empty id rejected",
			provider: `{"id": "", "name": "Acme", "slug": "acme", "website_url": ""}`,
			wantPath: "providers[0].id",
		},
		{
			name:     "uppercase slug rejected",
			provider: `{"id": "acme", "name": "Acme", "slug": "Acme", "website_url": ""}`,
			wantPath: "providers[0].slug",
		},
		{
			name:     "underscore slug rejected",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme_proxies", "website_url": ""}`,
			wantPath: "providers[0].slug",
		},
		{
			name:     "ftp website rejected",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme", "website_url": "ftp://acme.com"}`,
			wantPath: "providers[0].website_url",
		},
		{
			name:     "empty website passes",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme", "website_url": ""}`,
		},
		{
			name:     "missing website passes",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme"}`,
		},
		{
			name:     "bad proxy type rejected",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme", "website_url": "", "proxy_types": ["satellite"]}`,
			wantPath: "providers[0].proxy_types[0]",
		},
		{
			name:     "negative cheapest price rejected",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme", "website_url": "", "cheapest_price_per_gb": -1}`,
			wantPath: "providers[0].cheapest_price_per_gb",
		},
		{
			name:     "null cheapest price passes",
			provider: `{"id": "acme", "name": "Acme", "slug": "acme", "website_url": "", "cheapest_price_per_gb": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProvider(decode(t, tt.provider), "providers[0]")
			if tt.wantPath == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			wantSchemaError(t, err, tt.wantPath)
		})
	}
}

// TestValidateRecordNestedPath verifies tier violations surface with
// the full nested path
func TestValidateRecordNestedPath(t *testing.T) {
	record := decode(t, `{
		"provider_id": "acme",
		"provider_name": "Acme",
		"proxy_type": "residential",
		"tiers": [
			{"gb": 10, "pricing_model": "per_gb"},
			{"gb": -3, "pricing_model": "per_gb"}
		]
	}`)

	err := ValidateRecord(record, "pricing[3]")
	wantSchemaError(t, err, "pricing[3].tiers[1].gb")
}

// TestValidateRecordRawShape verifies raw records without derived
// fields pass validation
func TestValidateRecordRawShape(t *testing.T) {
	record := decode(t, `{
		"provider_id": "acme",
		"provider_name": "Acme",
		"proxy_type": "datacenter",
		"price_url": null,
		"tiers": [],
		"has_pricing": false
	}`)

	if err := ValidateRecord(record, "pricing[0]"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidatePricingDataShapes verifies both accepted top-level
// document shapes
func TestValidatePricingDataShapes(t *testing.T) {
	record := `{"provider_id": "acme", "provider_name": "Acme", "proxy_type": "residential", "tiers": []}`

	t.Run("bare array", func(t *testing.T) {
		result, err := ValidatePricingData(decode(t, `[`+record+`]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Count != 1 || result.TotalCount != 1 {
			t.Errorf("Count/TotalCount = %d/%d, want 1/1", result.Count, result.TotalCount)
		}
		if result.LastUpdated == "" {
			t.Error("expected defaulted LastUpdated")
		}
	})

	t.Run("wrapped object", func(t *testing.T) {
		doc := `{"pricing": [` + record + `], "last_updated": "2025-06-01", "total_count": 1}`
		result, err := ValidatePricingData(decode(t, doc))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.LastUpdated != "2025-06-01" {
			t.Errorf("LastUpdated = %q, want 2025-06-01", result.LastUpdated)
		}
		if result.TotalCount != 1 {
			t.Errorf("TotalCount = %d, want 1", result.TotalCount)
		}
	})

	t.Run("bad last_updated", func(t *testing.T) {
		doc := `{"pricing": [], "last_updated": "2023-02-29"}`
		if _, err := ValidatePricingData(decode(t, doc)); err == nil {
			t.Error("expected error for impossible calendar date")
		}
	})

	t.Run("wrong top level type", func(t *testing.T) {
		if _, err := ValidatePricingData("nope"); err == nil {
			t.Error("expected error for string document")
		}
	})

	t.Run("object without pricing key", func(t *testing.T) {
		if _, err := ValidatePricingData(decode(t, `{"records": []}`)); err == nil {
			t.Error("expected error for missing pricing key")
		}
	})

	t.Run("record index in error path", func(t *testing.T) {
		doc := `[` + record + `, {"provider_id": "", "provider_name": "X", "proxy_type": "other", "tiers": []}]`
		_, err := ValidatePricingData(decode(t, doc))
		wantSchemaError(t, err, "pricing[1].provider_id")
	})
}

// TestValidateProvidersDataShapes mirrors the document shape handling
// for the providers file
func TestValidateProvidersDataShapes(t *testing.T) {
	provider := `{"id": "acme", "name": "Acme", "slug": "acme", "website_url": "https://acme.com"}`

	result, err := ValidateProvidersData(decode(t, `{"providers": [`+provider+`], "last_updated": "2025-01-15", "total_count": 1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("Count = %d, want 1", result.Count)
	}

	_, err = ValidateProvidersData(decode(t, `[`+provider+`]`))
	if err != nil {
		t.Errorf("bare array rejected: %v", err)
	}
}

// TestCrossReference verifies orphan detection and the unpriced
// provider count
func TestCrossReference(t *testing.T) {
	providers := decode(t, `[
		{"id": "acme", "name": "Acme", "slug": "acme"},
		{"id": "zeta", "name": "Zeta", "slug": "zeta"},
		{"id": "idle", "name": "Idle", "slug": "idle"}
	]`)
	pricing := decode(t, `[
		{"provider_id": "acme"},
		{"provider_id": "ghost-two"},
		{"provider_id": "ghost-one"},
		{"provider_id": "zeta"}
	]`)

	report := CrossReference(providers, pricing)
	if report.Clean() {
		t.Error("Clean() = true, want false")
	}
	if len(report.OrphanedPricing) != 2 ||
		report.OrphanedPricing[0] != "ghost-one" || report.OrphanedPricing[1] != "ghost-two" {
		t.Errorf("OrphanedPricing = %v, want [ghost-one ghost-two]", report.OrphanedPricing)
	}
	if report.ProvidersWithoutPricing != 1 {
		t.Errorf("ProvidersWithoutPricing = %d, want 1", report.ProvidersWithoutPricing)
	}
}

// TestCrossReferenceClean verifies a fully linked dataset reports no
// findings
func TestCrossReferenceClean(t *testing.T) {
	providers := decode(t, `{"providers": [{"id": "acme"}], "last_updated": "2025-01-01", "total_count": 1}`)
	pricing := decode(t, `{"pricing": [{"provider_id": "acme"}], "last_updated": "2025-01-01", "total_count": 1}`)

	report := CrossReference(providers, pricing)
	if !report.Clean() {
		t.Errorf("Clean() = false: %+v", report)
	}
}

// TestErrorString verifies the path prefixes the message
func TestErrorString(t *testing.T) {
	err := errf("pricing[0].gb", -5, "number must be non-negative")
	if got := err.Error(); !strings.HasPrefix(got, "pricing[0].gb: ") {
		t.Errorf("Error() = %q, want path prefix", got)
	}
}
