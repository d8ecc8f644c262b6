package normalize

import (
	"reflect"
	"testing"

	"proxyprice/core/types"
)

// TestTiersRepairsRestatedRate verifies the stated quantity and total
// always win over a drifted per-unit price
func TestTiersRepairsRestatedRate(t *testing.T) {
	tests := []struct {
		name    string
		tier    types.Tier
		wantPPG *float64
	}{
		{
			name: "drifted rate is recomputed from the ratio",
			tier: types.Tier{
				GB:           types.Float(10),
				PricePerGB:   types.Float(5),
				Total:        types.Float(45),
				PricingModel: types.ModelPerGB,
			},
			wantPPG: types.Float(4.5),
		},
		{
			name: "consistent rate is unchanged",
			tier: types.Tier{
				GB:           types.Float(10),
				PricePerGB:   types.Float(5),
				Total:        types.Float(50),
				PricingModel: types.ModelPerGB,
			},
			wantPPG: types.Float(5),
		},
		{
			name: "ratio rounds to four places",
			tier: types.Tier{
				GB:           types.Float(3),
				Total:        types.Float(10),
				PricingModel: types.ModelPerGB,
			},
			wantPPG: types.Float(3.3333),
		},
		{
			name: "missing total passes through",
			tier: types.Tier{
				GB:           types.Float(10),
				PricePerGB:   types.Float(5),
				PricingModel: types.ModelPerGB,
			},
			wantPPG: types.Float(5),
		},
		{
			name: "zero quantity passes through",
			tier: types.Tier{
				GB:           types.Float(0),
				PricePerGB:   types.Float(5),
				Total:        types.Float(50),
				PricingModel: types.ModelPerGB,
			},
			wantPPG: types.Float(5),
		},
		{
			name: "per-ip tier is untouched",
			tier: types.Tier{
				IPs:          types.Int(10),
				PricePerIP:   types.Float(5),
				Total:        types.Float(45),
				PricingModel: types.ModelPerIP,
			},
			wantPPG: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Tiers([]types.Tier{tt.tier})
			if len(out) != 1 {
				t.Fatalf("Tiers returned %d tiers, want 1", len(out))
			}
			got := out[0].PricePerGB
			if (got == nil) != (tt.wantPPG == nil) || (got != nil && *got != *tt.wantPPG) {
				t.Errorf("price_per_gb = %v, want %v", got, tt.wantPPG)
			}
		})
	}
}

// TestTiersIdempotent verifies repairing an already repaired sequence
// changes nothing
func TestTiersIdempotent(t *testing.T) {
	input := []types.Tier{
		{GB: types.Float(10), PricePerGB: types.Float(5), Total: types.Float(45), PricingModel: types.ModelPerGB},
		{IPs: types.Int(10), PricePerIP: types.Float(0.47), Total: types.Float(4.7), PricingModel: types.ModelPerIP},
		{GB: types.Float(3), Total: types.Float(10), PricingModel: types.ModelPerGB},
	}

	once := Tiers(input)
	twice := Tiers(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed output:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

// TestTiersDoesNotMutateInput verifies the input slice survives intact
func TestTiersDoesNotMutateInput(t *testing.T) {
	input := []types.Tier{
		{GB: types.Float(10), PricePerGB: types.Float(5), Total: types.Float(45), PricingModel: types.ModelPerGB},
	}
	Tiers(input)
	if *input[0].PricePerGB != 5 {
		t.Errorf("input tier mutated: price_per_gb = %v", *input[0].PricePerGB)
	}
}

// TestTiersNil verifies nil input yields nil output
func TestTiersNil(t *testing.T) {
	if out := Tiers(nil); out != nil {
		t.Errorf("Tiers(nil) = %v, want nil", out)
	}
}

// TestPerGBExtremes verifies min/max only consider per-GB tiers that
// carry a unit price
func TestPerGBExtremes(t *testing.T) {
	tiers := []types.Tier{
		{PricePerGB: types.Float(7), PricingModel: types.ModelPerGB},
		{PricePerGB: types.Float(4.5), PricingModel: types.ModelPerGB},
		{PricePerGB: types.Float(12), PricingModel: types.ModelPerGB},
		{PricePerIP: types.Float(0.1), PricingModel: types.ModelPerIP},
		{Total: types.Float(25), PricingModel: types.ModelPerProxy},
	}

	min := MinPricePerGB(tiers)
	if min == nil || *min != 4.5 {
		t.Errorf("MinPricePerGB = %v, want 4.5", min)
	}
	max := MaxPricePerGB(tiers)
	if max == nil || *max != 12 {
		t.Errorf("MaxPricePerGB = %v, want 12", max)
	}
}

// TestPerGBExtremesNone verifies nil comes back when no tier has a
// per-GB unit price
func TestPerGBExtremesNone(t *testing.T) {
	tiers := []types.Tier{
		{PricePerIP: types.Float(0.5), PricingModel: types.ModelPerIP},
		{Total: types.Float(50), PricingModel: types.ModelPerThread},
	}
	if min := MinPricePerGB(tiers); min != nil {
		t.Errorf("MinPricePerGB = %v, want nil", *min)
	}
	if max := MaxPricePerGB(tiers); max != nil {
		t.Errorf("MaxPricePerGB = %v, want nil", *max)
	}
}

// TestDominantModel verifies majority counting and the first-seen
// tie-break that keeps published classifications stable
func TestDominantModel(t *testing.T) {
	tests := []struct {
		name  string
		tiers []types.Tier
		want  types.PricingModel
	}{
		{
			name: "clear majority",
			tiers: []types.Tier{
				{PricingModel: types.ModelPerIP},
				{PricingModel: types.ModelPerIP},
				{PricingModel: types.ModelPerGB},
			},
			want: types.ModelPerIP,
		},
		{
			name: "tie breaks toward first seen",
			tiers: []types.Tier{
				{PricingModel: types.ModelPerProxy},
				{PricingModel: types.ModelPerGB},
				{PricingModel: types.ModelPerGB},
				{PricingModel: types.ModelPerProxy},
			},
			want: types.ModelPerProxy,
		},
		{
			name:  "empty is unknown",
			tiers: nil,
			want:  types.ModelUnknown,
		},
		{
			name: "single tier",
			tiers: []types.Tier{
				{PricingModel: types.ModelPerThread},
			},
			want: types.ModelPerThread,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantModel(tt.tiers); got != tt.want {
				t.Errorf("DominantModel = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRecordComparable verifies a record with per-GB tiers gets
// extremes and the comparable flag
func TestRecordComparable(t *testing.T) {
	rec := types.PricingRecord{
		ProviderID: "acme",
		Tiers: []types.Tier{
			{GB: types.Float(10), PricePerGB: types.Float(5), Total: types.Float(45), PricingModel: types.ModelPerGB},
			{GB: types.Float(100), PricePerGB: types.Float(4), Total: types.Float(400), PricingModel: types.ModelPerGB},
		},
		HasPricing: true,
	}

	out := Record(rec)
	if !out.Comparable {
		t.Error("Comparable = false, want true")
	}
	if out.PricingModel != types.ModelPerGB {
		t.Errorf("PricingModel = %q, want %q", out.PricingModel, types.ModelPerGB)
	}
	if out.TierCount != 2 {
		t.Errorf("TierCount = %d, want 2", out.TierCount)
	}
	// The drifted 10 GB tier repairs to 4.5 before extremes are taken
	if out.MinPricePerGB == nil || *out.MinPricePerGB != 4 {
		t.Errorf("MinPricePerGB = %v, want 4", out.MinPricePerGB)
	}
	if out.MaxPricePerGB == nil || *out.MaxPricePerGB != 4.5 {
		t.Errorf("MaxPricePerGB = %v, want 4.5", out.MaxPricePerGB)
	}
}

// TestRecordNotComparable verifies records without per-GB unit prices
// carry the dominant model and null extremes
func TestRecordNotComparable(t *testing.T) {
	rec := types.PricingRecord{
		ProviderID: "acme",
		Tiers: []types.Tier{
			{IPs: types.Int(10), PricePerIP: types.Float(0.47), Total: types.Float(4.7), PricingModel: types.ModelPerIP},
		},
		HasPricing: true,
	}

	out := Record(rec)
	if out.Comparable {
		t.Error("Comparable = true, want false")
	}
	if out.PricingModel != types.ModelPerIP {
		t.Errorf("PricingModel = %q, want %q", out.PricingModel, types.ModelPerIP)
	}
	if out.MinPricePerGB != nil || out.MaxPricePerGB != nil {
		t.Errorf("extremes = %v/%v, want nil/nil", out.MinPricePerGB, out.MaxPricePerGB)
	}
}

// TestRecordEmptyTiers verifies a record with no tiers normalizes to
// the unknown model
func TestRecordEmptyTiers(t *testing.T) {
	out := Record(types.PricingRecord{ProviderID: "acme"})
	if out.PricingModel != types.ModelUnknown {
		t.Errorf("PricingModel = %q, want %q", out.PricingModel, types.ModelUnknown)
	}
	if out.TierCount != 0 {
		t.Errorf("TierCount = %d, want 0", out.TierCount)
	}
	if out.Comparable {
		t.Error("Comparable = true, want false")
	}
}

// TestProvidersAggregation verifies the provider fold: cheapest price,
// record count and the has-data flag
func TestProvidersAggregation(t *testing.T) {
	providers := []types.Provider{
		{ID: "acme", Name: "Acme"},
		{ID: "nodata", Name: "NoData"},
	}
	records := []types.PricingRecord{
		{ProviderID: "acme", HasPricing: true, MinPricePerGB: types.Float(4.5)},
		{ProviderID: "acme", HasPricing: true, MinPricePerGB: types.Float(3.2)},
		{ProviderID: "acme", HasPricing: false},
		{ProviderID: "nodata", HasPricing: false},
	}

	out := Providers(providers, records)
	if len(out) != 2 {
		t.Fatalf("Providers returned %d providers, want 2", len(out))
	}

	acme := out[0]
	if acme.CheapestPricePerGB == nil || *acme.CheapestPricePerGB != 3.2 {
		t.Errorf("acme cheapest = %v, want 3.2", acme.CheapestPricePerGB)
	}
	if acme.PricingCount != 3 {
		t.Errorf("acme pricing count = %d, want 3", acme.PricingCount)
	}
	if !acme.HasPricingData {
		t.Error("acme HasPricingData = false, want true")
	}

	nodata := out[1]
	if nodata.CheapestPricePerGB != nil {
		t.Errorf("nodata cheapest = %v, want nil", *nodata.CheapestPricePerGB)
	}
	if nodata.PricingCount != 1 {
		t.Errorf("nodata pricing count = %d, want 1", nodata.PricingCount)
	}
	if nodata.HasPricingData {
		t.Error("nodata HasPricingData = true, want false")
	}
}

// TestSortProviders verifies priced providers sort cheapest first and
// unpriced providers sink to the end in their original order
func TestSortProviders(t *testing.T) {
	providers := []types.Provider{
		{ID: "c", CheapestPricePerGB: types.Float(9)},
		{ID: "nil1"},
		{ID: "a", CheapestPricePerGB: types.Float(2)},
		{ID: "nil2"},
		{ID: "b", CheapestPricePerGB: types.Float(5)},
	}

	SortProviders(providers)

	wantOrder := []string{"a", "b", "c", "nil1", "nil2"}
	for i, want := range wantOrder {
		if providers[i].ID != want {
			t.Errorf("providers[%d].ID = %q, want %q", i, providers[i].ID, want)
		}
	}
}

// TestSortProvidersStable verifies equal prices keep ingestion order
func TestSortProvidersStable(t *testing.T) {
	providers := []types.Provider{
		{ID: "first", CheapestPricePerGB: types.Float(5)},
		{ID: "second", CheapestPricePerGB: types.Float(5)},
	}
	SortProviders(providers)
	if providers[0].ID != "first" || providers[1].ID != "second" {
		t.Errorf("equal-price order = %q, %q; want first, second", providers[0].ID, providers[1].ID)
	}
}
