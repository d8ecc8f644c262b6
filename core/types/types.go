// Package types defines the pricing data model shared by every pipeline stage.
package types

// PricingModel classifies how a tier is billed
type PricingModel string

const (
	// ModelPerGB is bandwidth-based pricing
	ModelPerGB PricingModel = "per_gb"

	// ModelPerIP is per-address pricing
	ModelPerIP PricingModel = "per_ip"

	// ModelPerProxy is per-proxy or per-port pricing
	ModelPerProxy PricingModel = "per_proxy"

	// ModelPerThread is concurrency-based pricing
	ModelPerThread PricingModel = "per_thread"

	// ModelUnknown is the fallback when no model could be determined
	ModelUnknown PricingModel = "unknown"
)

// Valid reports whether the model is a known enum member
func (m PricingModel) Valid() bool {
	switch m {
	case ModelPerGB, ModelPerIP, ModelPerProxy, ModelPerThread, ModelUnknown:
		return true
	}
	return false
}

// PricingModels lists all valid pricing models
func PricingModels() []PricingModel {
	return []PricingModel{ModelPerGB, ModelPerIP, ModelPerProxy, ModelPerThread, ModelUnknown}
}

// ProxyType classifies the kind of proxy an offer covers
type ProxyType string

const (
	// ProxyResidential is a residential proxy pool
	ProxyResidential ProxyType = "residential"

	// ProxyDatacenter is a datacenter proxy pool
	ProxyDatacenter ProxyType = "datacenter"

	// ProxyMobile is a mobile (4G/5G) proxy pool
	ProxyMobile ProxyType = "mobile"

	// ProxyISP is a static ISP proxy pool
	ProxyISP ProxyType = "isp"

	// ProxyOther covers uncategorized proxy types
	ProxyOther ProxyType = "other"
)

// Valid reports whether the proxy type is a known enum member
func (t ProxyType) Valid() bool {
	switch t {
	case ProxyResidential, ProxyDatacenter, ProxyMobile, ProxyISP, ProxyOther:
		return true
	}
	return false
}

// ProxyTypes lists all valid proxy types
func ProxyTypes() []ProxyType {
	return []ProxyType{ProxyResidential, ProxyDatacenter, ProxyMobile, ProxyISP, ProxyOther}
}

// Float returns a pointer to v, for optional numeric fields
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for optional count fields
func Int(v int) *int { return &v }

// String returns a pointer to v, for nullable string fields
func String(v string) *string { return &v }
