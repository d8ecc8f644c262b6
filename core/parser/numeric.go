// Package parser - Numeric token extraction
package parser

import (
	"strconv"
	"strings"
)

// number strips thousands separators and parses a numeric token.
// Tokens come from anchored submatches, so a parse failure means the
// pattern and this function disagree - treated as zero, never an error.
func number(tok string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// count parses an integer token with thousands separators stripped
func count(tok string) int {
	v, err := strconv.Atoi(strings.ReplaceAll(tok, ",", ""))
	if err != nil {
		return 0
	}
	return v
}
