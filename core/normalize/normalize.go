// Package normalize repairs parsed tier sequences and derives the
// comparison metrics published to the frontend.
//
// Both stages are total: they never reject input, and applying them
// twice yields the same output as applying them once.
package normalize

import (
	"proxyprice/core/types"
)

// Tiers returns a corrected tier sequence of equal length and order.
//
// Source pricing strings often state quantity and total precisely but
// restate the per-unit price with rounding drift; the ratio of the two
// authoritative numbers always wins over any restated figure. For every
// per-GB tier carrying both a positive quantity and a stated total, the
// unit price is recomputed as round(total/quantity, 4). Everything else
// passes through unchanged.
func Tiers(tiers []types.Tier) []types.Tier {
	if tiers == nil {
		return nil
	}

	out := make([]types.Tier, len(tiers))
	for i, tier := range tiers {
		if tier.PricingModel == types.ModelPerGB &&
			tier.GB != nil && *tier.GB > 0 && tier.Total != nil {
			tier.PricePerGB = types.Float(types.Ratio(*tier.Total, *tier.GB, 4))
		}
		out[i] = tier
	}
	return out
}
