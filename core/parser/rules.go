// Package parser - Default rule set
//
// Shapes come straight from the scraped spreadsheet column. Ordering is
// load-bearing: "$49.95/10 GB: $5/GB" must be claimed by the plan-ratio
// rule before the generic "$X/Y GB" fallback absorbs it with the wrong
// derivation, and bucketed/ranged shapes must win over the bare triplet
// shapes.
package parser

import (
	"regexp"
	"strings"

	"proxyprice/core/types"
)

// Numeric token fragments. Thousands separators are accepted everywhere
// and stripped before parsing.
const (
	num    = `(\d+(?:,\d{3})*(?:\.\d+)?)`
	intNum = `(\d+(?:,\d{3})*)`
	mo     = `(?i:mo(?:nth)?s?)`
)

func defaultRules() []Rule {
	return []Rule{
		{
			// "10 IPs/50 GB/$100: $5/GB" - an address+bandwidth bundle
			Name:    "bundle-ips-gb",
			pattern: regexp.MustCompile(`^` + intNum + `\s*IPs?\s*/\s*` + num + `\s*GB\s*/\s*\$` + num + `(?:\s*:\s*\$` + num + `\s*/\s*GB)?$`),
			extract: func(m []string) *types.Tier {
				gb := number(m[2])
				total := number(m[3])
				ppg := types.Ratio(total, gb, 4)
				if m[4] != "" {
					ppg = number(m[4])
				}
				return &types.Tier{
					IPs:          types.Int(count(m[1])),
					GB:           types.Float(gb),
					Total:        types.Float(total),
					PricePerGB:   types.Float(ppg),
					PricingModel: types.ModelPerGB,
				}
			},
		},
		{
			// "$49.95/10 GB: $5/GB", "$600/50GB: $12/GB" - a monthly plan
			// with its per-GB rate restated after the colon. The stated
			// total is authoritative; the restated rate is kept as-is here
			// and reconciled by the normalizer, not by this rule.
			Name:    "plan-total-gb-rate",
			pattern: regexp.MustCompile(`^\$` + num + `\s*/\s*` + num + `\s*GB\s*:\s*\$` + num + `\s*/\s*GB$`),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					GB:           types.Float(number(m[2])),
					PricePerGB:   types.Float(number(m[3])),
					Total:        types.Float(number(m[1])),
					PricingModel: types.ModelPerGB,
				}
			},
		},
		{
			// "$50/Mo: $25/GB" - monthly total with a per-GB rate but no
			// stated quantity; the quantity is implied by the ratio
			Name:    "monthly-total-gb-rate",
			pattern: regexp.MustCompile(`^\$` + num + `\s*/\s*` + mo + `\s*:\s*\$` + num + `\s*/\s*GB$`),
			extract: func(m []string) *types.Tier {
				total := number(m[1])
				ppg := number(m[2])
				tier := &types.Tier{
					PricePerGB:   types.Float(ppg),
					Total:        types.Float(total),
					PricingModel: types.ModelPerGB,
					PeriodMonths: types.Int(1),
				}
				if ppg > 0 {
					tier.GB = types.Float(types.Ratio(total, ppg, 4))
				}
				return tier
			},
		},
		{
			// "$30/mo (10 IPs): $3/IP" - monthly address plan
			Name:    "monthly-ips-rate",
			pattern: regexp.MustCompile(`^\$` + num + `\s*/\s*` + mo + `\s*\(` + intNum + `\s*IPs?\)\s*:\s*\$` + num + `\s*/\s*IP$`),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					IPs:          types.Int(count(m[2])),
					PricePerIP:   types.Float(number(m[3])),
					Total:        types.Float(number(m[1])),
					PricingModel: types.ModelPerIP,
					PeriodMonths: types.Int(1),
				}
			},
		},
		{
			// "1-15 GB: $7.50/GB" - bounded pay-as-you-go bucket
			Name:    "gb-range",
			pattern: regexp.MustCompile(`^` + num + `\s*-\s*` + num + `\s*GB\s*:?\s*\$` + num + `\s*/\s*GB$`),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					MinGB:        types.Float(number(m[1])),
					MaxGB:        types.Float(number(m[2])),
					PricePerGB:   types.Float(number(m[3])),
					IsPAYG:       true,
					PricingModel: types.ModelPerGB,
				}
			},
		},
		{
			// "50 GB+: $3.99/IP", "From 1 TB+: $2.50/GB" - open-ended
			// volume bucket; TB converts to GB
			Name:    "volume-bucket",
			pattern: regexp.MustCompile(`^(?i:From\s+)?` + num + `\s*(TB|GB)\s*\+\s*:?\s*\$` + num + `\s*/\s*(GB|IP)$`),
			extract: func(m []string) *types.Tier {
				minGB := number(m[1])
				if m[2] == "TB" {
					minGB *= 1000
				}
				price := number(m[3])
				tier := &types.Tier{
					MinGB:  types.Float(minGB),
					IsPAYG: true,
				}
				if m[4] == "IP" {
					tier.PricePerIP = types.Float(price)
					tier.PricingModel = types.ModelPerIP
				} else {
					tier.PricePerGB = types.Float(price)
					tier.PricingModel = types.ModelPerGB
				}
				return tier
			},
		},
		{
			// "Pay as you go: $8/GB" - explicit PAYG with a nominal
			// quantity of one
			Name:    "payg",
			pattern: regexp.MustCompile(`^(?i:Pay\s+as\s+you\s+go)\s*:\s*\$` + num + `\s*/\s*GB$`),
			extract: func(m []string) *types.Tier {
				ppg := number(m[1])
				return &types.Tier{
					GB:           types.Float(1),
					PricePerGB:   types.Float(ppg),
					Total:        types.Float(ppg),
					PricingModel: types.ModelPerGB,
					IsPAYG:       true,
				}
			},
		},
		{
			// "25 GB$3.6$90", "1 GB$7/GB$7" - quantity, rate, stated total.
			// The stated total always wins over quantity x rate; any drift
			// between the two is the normalizer's job, not this rule's.
			Name:    "gb-rate-total",
			pattern: regexp.MustCompile(`^` + num + `\s*GB\s*\$` + num + `(?:\s*/\s*GB)?\s*\$` + num + `$`),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					GB:           types.Float(number(m[1])),
					PricePerGB:   types.Float(number(m[2])),
					Total:        types.Float(number(m[3])),
					PricingModel: types.ModelPerGB,
				}
			},
		},
		{
			// "10 IPs$0.47$4.7", "100 IPs$0.035/IP$3.5"
			Name:    "ips-rate-total",
			pattern: regexp.MustCompile(`^` + intNum + `\s*IPs?\s*\$` + num + `(?:\s*/\s*IP)?\s*\$` + num + `$`),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					IPs:          types.Int(count(m[1])),
					PricePerIP:   types.Float(number(m[2])),
					Total:        types.Float(number(m[3])),
					PricingModel: types.ModelPerIP,
				}
			},
		},
		{
			// "1GB: $7.00/Mo" - a coarse monthly plan, so the derived
			// rate rounds to 2 places
			Name:    "gb-monthly",
			pattern: regexp.MustCompile(`^` + num + `\s*GB\s*:?\s*\$` + num + `\s*/\s*` + mo + `$`),
			extract: func(m []string) *types.Tier {
				gb := number(m[1])
				total := number(m[2])
				return &types.Tier{
					GB:           types.Float(gb),
					PricePerGB:   types.Float(types.Ratio(total, gb, 2)),
					Total:        types.Float(total),
					PricingModel: types.ModelPerGB,
					PeriodMonths: types.Int(1),
				}
			},
		},
		{
			// "1 Hour$2.95", "1 Day: $2.95", "30 Days$1.57/IP",
			// "1 Month: $1.57/IP" - billing-period tiers. A /IP or /GB
			// suffix makes it a unit rate with a nominal quantity of one;
			// otherwise the price is a per-proxy total.
			Name:    "billing-period",
			pattern: regexp.MustCompile(`^(\d+)\s*((?i:hours?|days?|months?))\s*:?\s*\$` + num + `(?:\s*/\s*((?i:IP|GB)))?$`),
			extract: func(m []string) *types.Tier {
				price := number(m[3])
				tier := &types.Tier{}
				switch strings.ToUpper(m[4]) {
				case "IP":
					tier.IPs = types.Int(1)
					tier.PricePerIP = types.Float(price)
					tier.PricingModel = types.ModelPerIP
				case "GB":
					tier.GB = types.Float(1)
					tier.PricePerGB = types.Float(price)
					tier.PricingModel = types.ModelPerGB
				default:
					tier.Total = types.Float(price)
					tier.PricingModel = types.ModelPerProxy
				}
				n := count(m[1])
				switch strings.ToLower(m[2])[0] {
				case 'h':
					tier.PeriodHours = types.Int(n)
				case 'd':
					tier.PeriodDays = types.Int(n)
				default:
					tier.PeriodMonths = types.Int(n)
				}
				return tier
			},
		},
		{
			// "$50/10 IPs" - total over an address count; the unit price
			// is a fine-grained derivation, so 4 places
			Name:    "total-over-ips",
			pattern: regexp.MustCompile(`^\$` + num + `\s*/\s*` + intNum + `\s*IPs?$`),
			extract: func(m []string) *types.Tier {
				total := number(m[1])
				ips := count(m[2])
				return &types.Tier{
					IPs:          types.Int(ips),
					PricePerIP:   types.Float(types.Ratio(total, float64(ips), 4)),
					Total:        types.Float(total),
					PricingModel: types.ModelPerIP,
				}
			},
		},
		{
			// "$100/month for 50GB" - monthly wording anywhere in the line
			Name:    "monthly-wording-gb",
			pattern: regexp.MustCompile(`\$` + num + `\s*/\s*(?i:mo)[A-Za-z]*.*?` + num + `\s*GB`),
			extract: totalOverGB,
		},
		{
			// "$X/Y GB" - the generic total-over-quantity fallback
			Name:    "total-over-gb",
			pattern: regexp.MustCompile(`\$` + num + `\s*/\s*` + num + `\s*GB`),
			extract: totalOverGB,
		},
		{
			// "100 Threads$50", "500 Threads: $90"
			Name:    "threads",
			pattern: regexp.MustCompile(`(\d+)\s*(?i:threads?).*?\$` + num),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					Threads:      types.Int(count(m[1])),
					Total:        types.Float(number(m[2])),
					PricingModel: types.ModelPerThread,
				}
			},
		},
		{
			// "5 Proxies: $25", "10 Ports$40"
			Name:    "proxies",
			pattern: regexp.MustCompile(intNum + `\s*(?i:prox(?:ies|y)|ports?).*?\$` + num),
			extract: func(m []string) *types.Tier {
				return &types.Tier{
					Proxies:      types.Int(count(m[1])),
					Total:        types.Float(number(m[2])),
					PricingModel: types.ModelPerProxy,
				}
			},
		},
	}
}

// totalOverGB derives the per-GB rate from a coarse monthly total/GB
// shape; plan-level derivations round to 2 places
func totalOverGB(m []string) *types.Tier {
	total := number(m[1])
	gb := number(m[2])
	return &types.Tier{
		GB:           types.Float(gb),
		PricePerGB:   types.Float(types.Ratio(total, gb, 2)),
		Total:        types.Float(total),
		PricingModel: types.ModelPerGB,
	}
}
