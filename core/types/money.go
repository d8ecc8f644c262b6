// Package types - Money arithmetic
package types

import "github.com/shopspring/decimal"

// Ratio divides num by den and rounds to places decimal places.
// Derived unit prices must go through decimal so the published numbers
// are reproducible bit-for-bit across runs. A zero denominator yields
// zero rather than an error: pricing text with a zero quantity is kept
// as-is and never crashes the pipeline.
func Ratio(num, den float64, places int32) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromFloat(num).
		Div(decimal.NewFromFloat(den)).
		Round(places).
		InexactFloat64()
}

// Round rounds v to places decimal places using decimal arithmetic
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
