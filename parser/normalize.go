package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// normalizeYAMLValue converts YAML-decoded values into the shapes produced by
// encoding/json: every mapping becomes map[string]any. Non-string keys such
// as unquoted status codes (200:) are formatted with fmt.Sprint.
func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalizeYAMLValue(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalizeYAMLValue(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalizeYAMLValue(child)
		}
		return t
	default:
		return v
	}
}

// toYAMLValue returns a copy of v with json.Number values converted to
// int64 or float64 so the YAML encoder emits them as numbers, not strings.
func toYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = toYAMLValue(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = toYAMLValue(child)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
