// Package schema - Record validation
package schema

import (
	"fmt"
	"time"
)

// FileResult summarizes a successfully validated data file
type FileResult struct {
	// Count is the number of validated records
	Count int

	// LastUpdated is the document date, defaulted for bare sequences
	LastUpdated string

	// TotalCount is the document count, defaulted for bare sequences
	TotalCount int
}

// ValidateTier checks one tier object. Unknown fields pass through:
// the validator tightens known fields without narrowing the schema.
func ValidateTier(v any, path string) error {
	tier, ok := v.(map[string]any)
	if !ok {
		return errf(path, v, "expected object, got %s", typeName(v))
	}

	for _, field := range []string{"gb", "price_per_gb", "total", "price_per_ip", "min_gb", "max_gb"} {
		if val, present := tier[field]; present {
			if err := nonNegativeNumber(val, path+"."+field); err != nil {
				return err
			}
		}
	}

	if val, present := tier["pricing_model"]; present {
		if err := pricingModelField(val, path+".pricing_model"); err != nil {
			return err
		}
	}

	if val, present := tier["is_payg"]; present && val != nil {
		if _, err := booleanField(val, path+".is_payg"); err != nil {
			return err
		}
	}

	for _, field := range []string{"ips", "proxies", "threads"} {
		if val, present := tier[field]; present && val != nil {
			if err := positiveInt(val, path+"."+field, field); err != nil {
				return err
			}
		}
	}

	for _, field := range []string{"period_hours", "period_days", "period_months"} {
		if val, present := tier[field]; present && val != nil {
			if _, err := nonNegativeInt(val, path+"."+field); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateProvider checks one provider object
func ValidateProvider(v any, path string) error {
	provider, ok := v.(map[string]any)
	if !ok {
		return errf(path, v, "expected object, got %s", typeName(v))
	}

	if _, err := nonEmptyString(provider["id"], path+".id"); err != nil {
		return err
	}
	if _, err := nonEmptyString(provider["name"], path+".name"); err != nil {
		return err
	}
	if _, err := slugField(provider["slug"], path+".slug"); err != nil {
		return err
	}
	websiteURL := provider["website_url"]
	if websiteURL == nil {
		websiteURL = ""
	}
	if _, err := urlField(websiteURL, path+".website_url"); err != nil {
		return err
	}

	if val, present := provider["has_pricing_data"]; present {
		if _, err := booleanField(val, path+".has_pricing_data"); err != nil {
			return err
		}
	}
	if val, present := provider["pricing_count"]; present {
		if _, err := nonNegativeInt(val, path+".pricing_count"); err != nil {
			return err
		}
	}
	if err := nonNegativeNumber(provider["cheapest_price_per_gb"], path+".cheapest_price_per_gb"); err != nil {
		return err
	}
	if err := nullableString(provider["trial_offer"], path+".trial_offer"); err != nil {
		return err
	}

	if val, present := provider["proxy_types"]; present && val != nil {
		list, ok := val.([]any)
		if !ok {
			return errf(path+".proxy_types", val, "expected array, got %s", typeName(val))
		}
		for i, pt := range list {
			if err := proxyTypeField(pt, fmt.Sprintf("%s.proxy_types[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateRecord checks one pricing record object
func ValidateRecord(v any, path string) error {
	record, ok := v.(map[string]any)
	if !ok {
		return errf(path, v, "expected object, got %s", typeName(v))
	}

	if _, err := nonEmptyString(record["provider_id"], path+".provider_id"); err != nil {
		return err
	}
	if _, err := nonEmptyString(record["provider_name"], path+".provider_name"); err != nil {
		return err
	}
	if err := proxyTypeField(record["proxy_type"], path+".proxy_type"); err != nil {
		return err
	}

	// pricing_model may be absent in raw records; it is only derived
	// during normalization
	if val, present := record["pricing_model"]; present && val != nil && val != "" {
		if err := pricingModelField(val, path+".pricing_model"); err != nil {
			return err
		}
	}

	for _, field := range []string{"comparable", "has_pricing"} {
		if val, present := record[field]; present {
			if _, err := booleanField(val, path+"."+field); err != nil {
				return err
			}
		}
	}
	if val, present := record["tier_count"]; present {
		if _, err := nonNegativeInt(val, path+".tier_count"); err != nil {
			return err
		}
	}
	if err := nonNegativeNumber(record["min_price_per_gb"], path+".min_price_per_gb"); err != nil {
		return err
	}
	if err := nonNegativeNumber(record["max_price_per_gb"], path+".max_price_per_gb"); err != nil {
		return err
	}

	if val, present := record["tiers"]; present && val != nil {
		tiers, ok := val.([]any)
		if !ok {
			return errf(path+".tiers", val, "expected array, got %s", typeName(val))
		}
		for i, tier := range tiers {
			if err := ValidateTier(tier, fmt.Sprintf("%s.tiers[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	if err := nullableURL(record["price_url"], path+".price_url"); err != nil {
		return err
	}

	return nil
}

// ValidateProvidersData validates a providers data file. Two top-level
// shapes are accepted: a bare record sequence, or an object wrapping
// the sequence with last_updated/total_count metadata.
func ValidateProvidersData(data any) (*FileResult, error) {
	return validateDocument(data, "providers", ValidateProvider)
}

// ValidatePricingData validates a pricing data file, same shapes
func ValidatePricingData(data any) (*FileResult, error) {
	return validateDocument(data, "pricing", ValidateRecord)
}

func validateDocument(data any, key string, validate func(v any, path string) error) (*FileResult, error) {
	// Bare sequence shape: metadata is defaulted
	if list, ok := data.([]any); ok {
		for i, item := range list {
			if err := validate(item, fmt.Sprintf("%s[%d]", key, i)); err != nil {
				return nil, err
			}
		}
		return &FileResult{
			Count:       len(list),
			LastUpdated: time.Now().Format("2006-01-02"),
			TotalCount:  len(list),
		}, nil
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return nil, errf(key+"_data", data, "expected object or array, got %s", typeName(data))
	}

	wrapped, ok := obj[key]
	if !ok {
		return nil, errf(key+"_data", data, "data must be an array or object with %q key", key)
	}
	list, ok := wrapped.([]any)
	if !ok {
		return nil, errf(key, wrapped, "expected array, got %s", typeName(wrapped))
	}

	for i, item := range list {
		if err := validate(item, fmt.Sprintf("%s[%d]", key, i)); err != nil {
			return nil, err
		}
	}

	result := &FileResult{
		Count:       len(list),
		LastUpdated: time.Now().Format("2006-01-02"),
		TotalCount:  len(list),
	}
	if val, present := obj["last_updated"]; present {
		if err := dateField(val, "last_updated"); err != nil {
			return nil, err
		}
		result.LastUpdated = val.(string)
	}
	if val, present := obj["total_count"]; present {
		n, err := nonNegativeInt(val, "total_count")
		if err != nil {
			return nil, err
		}
		result.TotalCount = n
	}
	return result, nil
}
