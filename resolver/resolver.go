package resolver

import (
	"fmt"
	"strings"

	"github.com/ooapi/oasprep/oaserrors"
)

// LocalPrefix is the required prefix of every resolvable reference.
const LocalPrefix = "#/"

// Resolve walks ref through root and returns the value it points at.
// The second result is false when ref is not a local pointer or any segment
// is missing or lands on a non-object value.
func Resolve(ref string, root map[string]any) (any, bool) {
	v, err := Lookup(ref, root)
	return v, err == nil
}

// ResolveSchema is like Resolve but also requires the target to be an object.
func ResolveSchema(ref string, root map[string]any) (map[string]any, bool) {
	v, ok := Resolve(ref, root)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// Lookup walks ref through root, returning a *oaserrors.ReferenceError
// describing the first segment that could not be traversed.
func Lookup(ref string, root map[string]any) (any, error) {
	if !strings.HasPrefix(ref, LocalPrefix) {
		return nil, invalidRef(ref)
	}
	if root == nil {
		return nil, &oaserrors.ReferenceError{Ref: ref, Message: "document is nil"}
	}

	parts := strings.Split(strings.TrimPrefix(ref, LocalPrefix), "/")
	current := any(root)
	for i, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, &oaserrors.ReferenceError{
				Ref:     ref,
				Segment: part,
				Message: fmt.Sprintf("cannot traverse into %s at #/%s", describe(current), strings.Join(parts[:i], "/")),
			}
		}
		next, ok := obj[part]
		if !ok {
			return nil, &oaserrors.ReferenceError{
				Ref:     ref,
				Segment: part,
				Message: "missing key",
			}
		}
		current = next
	}
	return current, nil
}

// Target returns the $ref string of a reference node, or "" if node is not an
// object carrying a non-empty string $ref.
func Target(node any) string {
	m, ok := node.(map[string]any)
	if !ok {
		return ""
	}
	ref, _ := m["$ref"].(string)
	return ref
}

func invalidRef(ref string) error {
	if ref == "" {
		return &oaserrors.ReferenceError{Message: "empty reference"}
	}
	if i := strings.Index(ref, "#"); i != 0 {
		// anything before the fragment names another document
		return &oaserrors.ReferenceError{Ref: ref, IsExternal: true}
	}
	return &oaserrors.ReferenceError{Ref: ref, Message: "pointer must start with " + LocalPrefix}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
