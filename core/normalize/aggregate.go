// Package normalize - Record and provider aggregation
package normalize

import (
	"sort"

	"proxyprice/core/types"
)

// MinPricePerGB returns the cheapest per-GB unit price across the
// tiers, or nil when no per-GB tier carries one. Ranged PAYG tiers
// count with their single stated unit price, not their bounds.
func MinPricePerGB(tiers []types.Tier) *float64 {
	return perGBExtreme(tiers, func(candidate, best float64) bool { return candidate < best })
}

// MaxPricePerGB returns the most expensive per-GB unit price across
// the tiers, or nil when no per-GB tier carries one
func MaxPricePerGB(tiers []types.Tier) *float64 {
	return perGBExtreme(tiers, func(candidate, best float64) bool { return candidate > best })
}

func perGBExtreme(tiers []types.Tier, better func(candidate, best float64) bool) *float64 {
	var extreme *float64
	for _, tier := range tiers {
		if tier.PricingModel != types.ModelPerGB || tier.PricePerGB == nil {
			continue
		}
		if extreme == nil || better(*tier.PricePerGB, *extreme) {
			extreme = types.Float(*tier.PricePerGB)
		}
	}
	return extreme
}

// DominantModel returns the most frequent pricing model across the
// tiers. Ties break toward the model seen first, which keeps published
// classifications stable across runs; an empty sequence is unknown.
func DominantModel(tiers []types.Tier) types.PricingModel {
	if len(tiers) == 0 {
		return types.ModelUnknown
	}

	counts := make(map[types.PricingModel]int)
	var seen []types.PricingModel
	for _, tier := range tiers {
		if counts[tier.PricingModel] == 0 {
			seen = append(seen, tier.PricingModel)
		}
		counts[tier.PricingModel]++
	}

	best := seen[0]
	for _, model := range seen[1:] {
		if counts[model] > counts[best] {
			best = model
		}
	}
	return best
}

// Record normalizes a record's tiers and derives its aggregates:
// per-GB extremes, the comparable flag, the dominant model, and the
// tier count. The input record is not mutated.
func Record(rec types.PricingRecord) types.PricingRecord {
	rec.Tiers = Tiers(rec.Tiers)
	rec.TierCount = len(rec.Tiers)

	min := MinPricePerGB(rec.Tiers)
	if min != nil {
		rec.MinPricePerGB = min
		rec.MaxPricePerGB = MaxPricePerGB(rec.Tiers)
		rec.PricingModel = types.ModelPerGB
		rec.Comparable = true
		return rec
	}

	rec.MinPricePerGB = nil
	rec.MaxPricePerGB = nil
	rec.PricingModel = DominantModel(rec.Tiers)
	rec.Comparable = false
	return rec
}

// Records normalizes every record in order
func Records(recs []types.PricingRecord) []types.PricingRecord {
	out := make([]types.PricingRecord, len(recs))
	for i, rec := range recs {
		out[i] = Record(rec)
	}
	return out
}

// Providers folds the normalized records into each provider's
// aggregates. The fold is pure: no state is shared across providers,
// and the input slice is not mutated.
func Providers(providers []types.Provider, records []types.PricingRecord) []types.Provider {
	out := make([]types.Provider, len(providers))
	for i, provider := range providers {
		var cheapest *float64
		var count int
		var hasData bool

		for _, rec := range records {
			if rec.ProviderID != provider.ID {
				continue
			}
			count++
			if rec.HasPricing {
				hasData = true
			}
			if rec.MinPricePerGB != nil && (cheapest == nil || *rec.MinPricePerGB < *cheapest) {
				cheapest = types.Float(*rec.MinPricePerGB)
			}
		}

		provider.CheapestPricePerGB = cheapest
		provider.PricingCount = count
		provider.HasPricingData = hasData
		out[i] = provider
	}
	return out
}

// SortProviders orders providers for display: priced providers first,
// cheapest ascending; providers without a comparable price last. The
// sort is stable so equal providers keep their ingestion order.
func SortProviders(providers []types.Provider) {
	sort.SliceStable(providers, func(i, j int) bool {
		a, b := providers[i].CheapestPricePerGB, providers[j].CheapestPricePerGB
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
