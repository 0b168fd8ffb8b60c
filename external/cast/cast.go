// Package cast converts a document.Vertex's materialized key and value
// strings to Go primitive types. A failed cast is not a program error, so
// every accessor reports success with a boolean rather than an error.
package cast

import "strconv"

// Vertex is the subset of document.Vertex that casting needs. Taking this
// shape instead of the concrete type keeps this package decoupled from the
// core's internal package boundary.
type Vertex struct {
	Key   string
	Value string
}

// KeyAsString returns v's key unchanged; it always succeeds.
func KeyAsString(v Vertex) (string, bool) { return v.Key, true }

// ValueAsString returns v's value unchanged; it always succeeds.
func ValueAsString(v Vertex) (string, bool) { return v.Value, true }

// KeyAsFloat64 parses v's key as a 64-bit float.
func KeyAsFloat64(v Vertex) (float64, bool) { return AsFloat64(v.Key) }

// KeyAsInt64 parses v's key as a signed 64-bit integer.
func KeyAsInt64(v Vertex) (int64, bool) { return AsInt64(v.Key) }

// KeyAsUint64 parses v's key as an unsigned 64-bit integer.
func KeyAsUint64(v Vertex) (uint64, bool) { return AsUint64(v.Key) }

// KeyAsBool parses v's key as "true" or "false".
func KeyAsBool(v Vertex) (bool, bool) { return AsBool(v.Key) }

// ValueAsFloat64 parses v's value as a 64-bit float.
func ValueAsFloat64(v Vertex) (float64, bool) { return AsFloat64(v.Value) }

// ValueAsInt64 parses v's value as a signed 64-bit integer.
func ValueAsInt64(v Vertex) (int64, bool) { return AsInt64(v.Value) }

// ValueAsUint64 parses v's value as an unsigned 64-bit integer.
func ValueAsUint64(v Vertex) (uint64, bool) { return AsUint64(v.Value) }

// ValueAsBool parses v's value as "true" or "false".
func ValueAsBool(v Vertex) (bool, bool) { return AsBool(v.Value) }

// ValueAsArray splits v's value on top-level commas, respecting quoted
// string content, the way an Array node's stringified value lists its
// elements. It does not strip surrounding quotes from string elements.
func ValueAsArray(v Vertex) ([]string, bool) {
	var values []string
	var item []rune
	inString := false
	var previous rune

	for _, c := range v.Value {
		switch {
		case c == '"':
			if !inString {
				inString = true
			} else if previous != '\\' {
				inString = false
			}
			item = append(item, c)
		case c == ',' && !inString:
			values = append(values, string(item))
			item = item[:0]
		default:
			item = append(item, c)
		}
		previous = c
	}
	if len(item) > 0 {
		values = append(values, string(item))
	}
	return values, true
}

// AsFloat64 parses s as a 64-bit float.
func AsFloat64(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// AsInt64 parses s as a signed 64-bit integer.
func AsInt64(s string) (int64, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	return i, err == nil
}

// AsUint64 parses s as an unsigned 64-bit integer.
func AsUint64(s string) (uint64, bool) {
	u, err := strconv.ParseUint(s, 10, 64)
	return u, err == nil
}

// AsBool parses s as the literal "true" or "false".
func AsBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
