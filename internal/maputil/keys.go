// Package maputil provides small generic helpers for working with maps.
package maputil

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// The result is a snapshot: callers may mutate m while ranging over it.
// A nil or empty map yields an empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	if keys == nil {
		return []string{}
	}
	slices.Sort(keys)
	return keys
}
