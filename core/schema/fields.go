// Package schema - Field validators
package schema

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"

	"proxyprice/core/types"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// asNumber accepts decoded JSON numbers and plain Go ints, which show
// up when validating values built in-process rather than read from disk
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func nonEmptyString(v any, path string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errf(path, v, "expected string, got %s", typeName(v))
	}
	if strings.TrimSpace(s) == "" {
		return "", errf(path, v, "string cannot be empty")
	}
	return s, nil
}

func slugField(v any, path string) (string, error) {
	s, err := nonEmptyString(v, path)
	if err != nil {
		return "", err
	}
	if !slugPattern.MatchString(s) {
		return "", errf(path, v, "slug must be lowercase alphanumeric with hyphens")
	}
	return s, nil
}

// urlField validates an http(s) URL with both scheme and host present.
// Empty strings pass: the field is nullable on the frontend.
func urlField(v any, path string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errf(path, v, "expected string URL, got %s", typeName(v))
	}
	if s == "" {
		return s, nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", errf(path, v, "invalid URL format")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errf(path, v, "URL must use http or https scheme, got %q", u.Scheme)
	}
	return s, nil
}

func nullableURL(v any, path string) error {
	if v == nil || v == "" {
		return nil
	}
	_, err := urlField(v, path)
	return err
}

func nullableString(v any, path string) error {
	if v == nil || v == "" {
		return nil
	}
	if _, ok := v.(string); !ok {
		return errf(path, v, "expected string, got %s", typeName(v))
	}
	return nil
}

// nonNegativeNumber validates a nullable non-negative number
func nonNegativeNumber(v any, path string) error {
	if v == nil {
		return nil
	}
	n, ok := asNumber(v)
	if !ok {
		return errf(path, v, "expected number, got %s", typeName(v))
	}
	if n < 0 {
		return errf(path, v, "number must be non-negative")
	}
	return nil
}

func booleanField(v any, path string) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errf(path, v, "expected boolean, got %s", typeName(v))
	}
	return b, nil
}

// integerField rejects non-numbers and numbers with a fractional part.
// JSON has one number type, so "integer" means a whole value here.
func integerField(v any, path string) (int, error) {
	n, ok := asNumber(v)
	if !ok || n != math.Trunc(n) {
		return 0, errf(path, v, "expected integer, got %s", typeName(v))
	}
	return int(n), nil
}

func nonNegativeInt(v any, path string) (int, error) {
	n, err := integerField(v, path)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errf(path, v, "integer must be non-negative")
	}
	return n, nil
}

func positiveInt(v any, path, field string) error {
	n, err := integerField(v, path)
	if err != nil || n <= 0 {
		return errf(path, v, "%s must be a positive integer", field)
	}
	return nil
}

func proxyTypeField(v any, path string) error {
	s, ok := v.(string)
	if !ok {
		return errf(path, v, "expected string, got %s", typeName(v))
	}
	if !types.ProxyType(s).Valid() {
		return errf(path, v, "must be one of: %s", enumList(types.ProxyTypes()))
	}
	return nil
}

func pricingModelField(v any, path string) error {
	s, ok := v.(string)
	if !ok {
		return errf(path, v, "expected string, got %s", typeName(v))
	}
	if !types.PricingModel(s).Valid() {
		return errf(path, v, "must be one of: %s", enumList(types.PricingModels()))
	}
	return nil
}

// dateField validates YYYY-MM-DD format and that the value is a real
// calendar date
func dateField(v any, path string) error {
	s, ok := v.(string)
	if !ok {
		return errf(path, v, "expected string date, got %s", typeName(v))
	}
	if !datePattern.MatchString(s) {
		return errf(path, v, "invalid date format, expected YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errf(path, v, "invalid date value")
	}
	return nil
}

func enumList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
