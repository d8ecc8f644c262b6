// Package parser classifies free-text pricing lines into typed tiers.
//
// The parser is an ordered cascade of pattern rules evaluated top to
// bottom; the first rule whose shape matches wins and no further rules
// are tried. Rule order is a first-class design decision: rules that
// recognize more specific shapes sit above generic fallbacks that would
// otherwise absorb their lines. A line matching no rule is a normal,
// silent outcome - plenty of offer text is marketing copy or section
// headers, never pricing.
package parser

import (
	"regexp"
	"strings"

	"proxyprice/core/types"
)

// Rule is one entry in the cascade: a named textual shape plus the
// extraction that builds a tier from its submatches. Extract may return
// nil to turn a textual match into a no-match.
type Rule struct {
	// Name identifies the rule in logs and tests
	Name string

	pattern *regexp.Regexp
	extract func(m []string) *types.Tier
}

// Match applies the rule to a single trimmed line
func (r *Rule) Match(line string) *types.Tier {
	m := r.pattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return r.extract(m)
}

// Cascade evaluates rules in priority order, first success wins
type Cascade struct {
	rules []Rule
}

// NewCascade returns a cascade with the default rule set
func NewCascade() *Cascade {
	return &Cascade{rules: defaultRules()}
}

// RuleNames returns the rule names in evaluation order
func (c *Cascade) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}

// sectionHeader matches bare section headers like "Dedicated:" or
// "Pay / GB:" - letters, digits and light punctuation ending in a
// colon, with no price anywhere. These are never pricing lines and are
// rejected before the cascade runs.
var sectionHeader = regexp.MustCompile(`^[A-Za-z0-9&()/+.,' -]+:$`)

// ParseLine classifies one line of pricing text. It returns the
// extracted tier, or nil when the line matches no rule. It never fails.
func (c *Cascade) ParseLine(line string) *types.Tier {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if sectionHeader.MatchString(line) {
		return nil
	}
	for i := range c.rules {
		if tier := c.rules[i].Match(line); tier != nil {
			return tier
		}
	}
	return nil
}

// ParseOffer parses a multi-line offer by applying ParseLine to every
// line independently, concatenating the matches in source order. Line
// order is preserved: it drives display tie-breaks downstream.
func (c *Cascade) ParseOffer(text string) []types.Tier {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tiers []types.Tier
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if tier := c.ParseLine(line); tier != nil {
			tiers = append(tiers, *tier)
		}
	}
	return tiers
}
