// Package schema re-validates the published dataset against the
// frontend contract.
//
// This is a defense-in-depth layer, deliberately independent of the
// typed model the pipeline builds: it operates on raw decoded JSON so
// that whatever ends up in the output files is what gets checked. The
// same field names, enum values, and nullability rules are mirrored by
// the consuming frontend's type definitions; this package is the
// authoritative side of that contract.
package schema

import "fmt"

// Error is a field-level schema violation. Path pinpoints the
// offending field (e.g. "pricing[3].tiers[1].gb") and Value carries
// the rejected value for the error report.
type Error struct {
	// Path is the JSON path of the offending field
	Path string

	// Message describes the violation
	Message string

	// Value is the offending value
	Value any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func errf(path string, value any, format string, args ...any) *Error {
	return &Error{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	}
}

// typeName names a decoded JSON value's type for error messages
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
