// Package types - Provider
package types

import "encoding/json"

// Provider is one proxy seller with its discovered proxy types and the
// aggregates derived from its pricing records. Aggregates are a pure
// function of the associated records and are recomputed every run.
type Provider struct {
	// ID is the stable provider identifier (equal to the slug)
	ID string `json:"id"`

	// Name is the display name as scraped
	Name string `json:"name"`

	// Slug is the URL-safe lowercase hyphenated identifier
	Slug string `json:"slug"`

	// WebsiteURL is the provider's site, derived from the pricing URL
	WebsiteURL string `json:"website_url"`

	// TrialOffer is the free-text trial description, null when absent
	TrialOffer *string `json:"trial_offer"`

	// ProxyTypes lists discovered proxy types in insertion order
	ProxyTypes []ProxyType `json:"proxy_types"`

	// CheapestPricePerGB is the minimum per-GB price across all of the
	// provider's comparable records, null when none exist
	CheapestPricePerGB *float64 `json:"cheapest_price_per_gb"`

	// HasPricingData reports whether any record carried offer text
	HasPricingData bool `json:"has_pricing_data"`

	// PricingCount is the number of associated pricing records
	PricingCount int `json:"pricing_count"`

	// Extra holds unknown fields passed through unchanged
	Extra map[string]any `json:"-"`
}

var providerFields = knownFields(
	"id", "name", "slug", "website_url", "trial_offer", "proxy_types",
	"cheapest_price_per_gb", "has_pricing_data", "pricing_count",
)

type providerAlias Provider

// MarshalJSON emits the typed fields followed by extension fields in
// sorted key order
func (p Provider) MarshalJSON() ([]byte, error) {
	obj, err := json.Marshal(providerAlias(p))
	if err != nil {
		return nil, err
	}
	return appendExtra(obj, p.Extra)
}

// UnmarshalJSON decodes typed fields and keeps unknown fields in Extra
func (p *Provider) UnmarshalJSON(data []byte) error {
	var a providerAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := collectExtra(data, providerFields)
	if err != nil {
		return err
	}
	*p = Provider(a)
	p.Extra = extra
	return nil
}

// ProvidersDocument is the published provider dataset
type ProvidersDocument struct {
	// Providers is the display-ordered provider sequence
	Providers []Provider `json:"providers"`

	// LastUpdated is the publication date, YYYY-MM-DD
	LastUpdated string `json:"last_updated"`

	// TotalCount is the provider count
	TotalCount int `json:"total_count"`
}
