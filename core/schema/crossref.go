package schema

import "sort"

// CrossRefReport describes provider/pricing linkage issues. These are
// advisory findings, not validation failures: a provider without
// pricing rows is a data gap, not a malformed file.
type CrossRefReport struct {
	// OrphanedPricing lists provider IDs referenced by pricing records
	// that have no matching provider entry, sorted
	OrphanedPricing []string

	// ProvidersWithoutPricing counts providers with no pricing records
	ProvidersWithoutPricing int
}

// Clean reports whether no linkage issue was found
func (r *CrossRefReport) Clean() bool {
	return len(r.OrphanedPricing) == 0 && r.ProvidersWithoutPricing == 0
}

// CrossReference compares the provider IDs present in both data files.
// Both inputs must already be schema-valid; either top-level shape is
// accepted.
func CrossReference(providersData, pricingData any) *CrossRefReport {
	providerIDs := make(map[string]bool)
	for _, item := range records(providersData, "providers") {
		if obj, ok := item.(map[string]any); ok {
			if id, ok := obj["id"].(string); ok {
				providerIDs[id] = false
			}
		}
	}

	orphans := make(map[string]bool)
	for _, item := range records(pricingData, "pricing") {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := obj["provider_id"].(string)
		if !ok {
			continue
		}
		if _, known := providerIDs[id]; known {
			providerIDs[id] = true
		} else {
			orphans[id] = true
		}
	}

	report := &CrossRefReport{OrphanedPricing: make([]string, 0, len(orphans))}
	for id := range orphans {
		report.OrphanedPricing = append(report.OrphanedPricing, id)
	}
	sort.Strings(report.OrphanedPricing)

	for _, seen := range providerIDs {
		if !seen {
			report.ProvidersWithoutPricing++
		}
	}
	return report
}

// records unwraps either accepted document shape into its sequence
func records(data any, key string) []any {
	if list, ok := data.([]any); ok {
		return list
	}
	if obj, ok := data.(map[string]any); ok {
		if list, ok := obj[key].([]any); ok {
			return list
		}
	}
	return nil
}
