// Package types - Pricing tier
package types

import "encoding/json"

// Tier is one priced unit extracted from a single offer line,
// e.g. "10 GB for $30". Which optional fields are populated depends on
// the rule that matched the line; the pricing model tag is always set.
type Tier struct {
	// GB is the bandwidth quantity in gigabytes
	GB *float64 `json:"gb,omitempty"`

	// PricePerGB is the unit price per gigabyte
	PricePerGB *float64 `json:"price_per_gb,omitempty"`

	// Total is the stated total price for the tier
	Total *float64 `json:"total,omitempty"`

	// PricingModel tags how this tier is billed
	PricingModel PricingModel `json:"pricing_model"`

	// IsPAYG marks pay-as-you-go tiers with no fixed commitment
	IsPAYG bool `json:"is_payg,omitempty"`

	// PricePerIP is the unit price per address
	PricePerIP *float64 `json:"price_per_ip,omitempty"`

	// IPs is the number of addresses in the tier
	IPs *int `json:"ips,omitempty"`

	// Proxies is the number of proxies or ports in the tier
	Proxies *int `json:"proxies,omitempty"`

	// Threads is the number of concurrent threads in the tier
	Threads *int `json:"threads,omitempty"`

	// MinGB is the lower bound for bucketed or ranged pricing
	MinGB *float64 `json:"min_gb,omitempty"`

	// MaxGB is the upper bound for ranged pricing
	MaxGB *float64 `json:"max_gb,omitempty"`

	// PeriodHours is the billing period in hours, when stated
	PeriodHours *int `json:"period_hours,omitempty"`

	// PeriodDays is the billing period in days, when stated
	PeriodDays *int `json:"period_days,omitempty"`

	// PeriodMonths is the billing period in months, when stated
	PeriodMonths *int `json:"period_months,omitempty"`

	// Extra holds unknown fields passed through unchanged
	Extra map[string]any `json:"-"`
}

var tierFields = knownFields(
	"gb", "price_per_gb", "total", "pricing_model", "is_payg",
	"price_per_ip", "ips", "proxies", "threads", "min_gb", "max_gb",
	"period_hours", "period_days", "period_months",
)

type tierAlias Tier

// MarshalJSON emits the typed fields followed by extension fields in
// sorted key order
func (t Tier) MarshalJSON() ([]byte, error) {
	obj, err := json.Marshal(tierAlias(t))
	if err != nil {
		return nil, err
	}
	return appendExtra(obj, t.Extra)
}

// UnmarshalJSON decodes typed fields and keeps unknown fields in Extra
func (t *Tier) UnmarshalJSON(data []byte) error {
	var a tierAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := collectExtra(data, tierFields)
	if err != nil {
		return err
	}
	*t = Tier(a)
	t.Extra = extra
	return nil
}
