// Package ingest reads the provider survey CSV and turns it into raw
// provider and pricing records. The survey has one row per provider
// and proxy type, with a free-text multi-line "Price Offers" column
// that the parser cascade breaks into tiers.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"proxyprice/core/parser"
	"proxyprice/core/types"
	"proxyprice/internal/errors"
	"proxyprice/internal/logging"
)

// Column names expected in the survey header row
const (
	colName       = "Name"
	colProperty   = "Property Name"
	colPriceURL   = "Price URL"
	colOffers     = "Price Offers"
	colTrialOffer = "Trial Offer"
)

// Result holds the raw records extracted from one survey file.
// Providers are deduplicated by slug; pricing records keep one entry
// per CSV row so that per-proxy-type offers stay separate.
type Result struct {
	Providers []types.Provider
	Pricing   []types.PricingRecord
}

// ParseCSV reads and parses the survey file at path
func ParseCSV(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Input("failed to open survey CSV", err).
			WithContext("path", path)
	}
	defer f.Close()

	result, err := ParseReader(f)
	if err != nil {
		return nil, err
	}
	logging.Info("parsed survey CSV",
		zap.String("path", path),
		zap.Int("providers", len(result.Providers)),
		zap.Int("pricing_records", len(result.Pricing)))
	return result, nil
}

// ParseReader parses survey CSV content from r
func ParseReader(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Input("survey CSV is empty", nil)
	}
	if err != nil {
		return nil, errors.Input("failed to read survey CSV header", err)
	}
	columns := headerIndex(header)
	for _, required := range []string{colName, colProperty} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Input("survey CSV is missing a required column", nil).
				WithContext("column", required)
		}
	}

	result := &Result{}
	providerIndex := make(map[string]int)
	cascade := parser.NewCascade()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Input("failed to read survey CSV row", err)
		}

		name := field(row, columns, colName)
		property := field(row, columns, colProperty)
		if name == "" || property == "" {
			continue
		}
		priceURL := field(row, columns, colPriceURL)
		offers := field(row, columns, colOffers)
		trialOffer := field(row, columns, colTrialOffer)

		id := slug.Make(name)
		idx, seen := providerIndex[id]
		if !seen {
			idx = len(result.Providers)
			providerIndex[id] = idx
			result.Providers = append(result.Providers, types.Provider{
				ID:         id,
				Name:       name,
				Slug:       id,
				WebsiteURL: WebsiteFromURL(priceURL),
				TrialOffer: optional(trialOffer),
			})
		}

		proxyType := NormalizeProxyType(property)
		provider := &result.Providers[idx]
		if !containsProxyType(provider.ProxyTypes, proxyType) {
			provider.ProxyTypes = append(provider.ProxyTypes, proxyType)
		}

		// has_pricing tracks the presence of offer text, not parse
		// success: a provider whose offers are all free-form copy
		// still has pricing, we just could not structure it
		tiers := cascade.ParseOffer(offers)
		result.Pricing = append(result.Pricing, types.PricingRecord{
			ProviderID:   id,
			ProviderName: name,
			ProxyType:    proxyType,
			PriceURL:     optional(priceURL),
			Tiers:        tiers,
			HasPricing:   offers != "",
		})
	}

	return result, nil
}

// NormalizeProxyType maps a free-text property name onto the proxy
// type enum. Unrecognized names fall through to "other" rather than
// failing the row.
func NormalizeProxyType(propertyName string) types.ProxyType {
	lower := strings.ToLower(propertyName)
	switch {
	case strings.Contains(lower, "residential"):
		return types.ProxyResidential
	case strings.Contains(lower, "datacenter"), strings.Contains(lower, "data center"):
		return types.ProxyDatacenter
	case strings.Contains(lower, "mobile"):
		return types.ProxyMobile
	case strings.Contains(lower, "isp"):
		return types.ProxyISP
	default:
		return types.ProxyOther
	}
}

// WebsiteFromURL reduces a pricing page URL to the provider's site
// root. Anything that does not look like an http(s) URL is passed
// through untouched.
func WebsiteFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	rest, ok := strings.CutPrefix(rawURL, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(rawURL, "http://")
	}
	if !ok {
		return rawURL
	}
	rest = strings.TrimPrefix(rest, "www.")
	host, _, _ := strings.Cut(rest, "/")
	if host == "" {
		return rawURL
	}
	return "https://" + host
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func containsProxyType(list []types.ProxyType, pt types.ProxyType) bool {
	for _, existing := range list {
		if existing == pt {
			return true
		}
	}
	return false
}
