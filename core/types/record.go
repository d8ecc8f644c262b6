// Package types - Pricing record
package types

import "encoding/json"

// PricingRecord is the normalized result for one (provider, proxy type)
// pairing: the parsed tier sequence plus the derived comparison metrics.
type PricingRecord struct {
	// ProviderID references the owning provider by slug
	ProviderID string `json:"provider_id"`

	// ProviderName is the provider display name
	ProviderName string `json:"provider_name"`

	// ProxyType is the proxy type this record covers
	ProxyType ProxyType `json:"proxy_type"`

	// PriceURL is the pricing page the offer was taken from
	PriceURL *string `json:"price_url"`

	// Tiers is the parsed tier sequence in source line order
	Tiers []Tier `json:"tiers"`

	// HasPricing reports whether any offer text was present at all,
	// independent of whether it parsed into tiers
	HasPricing bool `json:"has_pricing"`

	// MinPricePerGB is the cheapest per-GB unit price, null when no
	// per-GB tier exists
	MinPricePerGB *float64 `json:"min_price_per_gb"`

	// MaxPricePerGB is the most expensive per-GB unit price
	MaxPricePerGB *float64 `json:"max_price_per_gb"`

	// PricingModel is the dominant model across the tier sequence
	PricingModel PricingModel `json:"pricing_model"`

	// Comparable reports whether a per-GB unit price could be derived
	Comparable bool `json:"comparable"`

	// TierCount is the tier sequence length
	TierCount int `json:"tier_count"`

	// Extra holds unknown fields passed through unchanged
	Extra map[string]any `json:"-"`
}

var recordFields = knownFields(
	"provider_id", "provider_name", "proxy_type", "price_url", "tiers",
	"has_pricing", "min_price_per_gb", "max_price_per_gb",
	"pricing_model", "comparable", "tier_count",
)

type recordAlias PricingRecord

// MarshalJSON emits the typed fields followed by extension fields in
// sorted key order
func (r PricingRecord) MarshalJSON() ([]byte, error) {
	obj, err := json.Marshal(recordAlias(r))
	if err != nil {
		return nil, err
	}
	return appendExtra(obj, r.Extra)
}

// UnmarshalJSON decodes typed fields and keeps unknown fields in Extra
func (r *PricingRecord) UnmarshalJSON(data []byte) error {
	var a recordAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := collectExtra(data, recordFields)
	if err != nil {
		return err
	}
	*r = PricingRecord(a)
	r.Extra = extra
	return nil
}

// PricingDocument is the published pricing dataset
type PricingDocument struct {
	// Pricing is the ordered record sequence
	Pricing []PricingRecord `json:"pricing"`

	// LastUpdated is the publication date, YYYY-MM-DD
	LastUpdated string `json:"last_updated"`

	// TotalCount is the record count
	TotalCount int `json:"total_count"`
}
