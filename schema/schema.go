package schema

// Kind identifies the keyword that governs a schema node.
type Kind uint8

const (
	// KindTyped is a node described by type and value keywords only
	KindTyped Kind = iota
	// KindRef is a reference node
	KindRef
	// KindAllOf is an intersection composition
	KindAllOf
	// KindOneOf is an exclusive union composition
	KindOneOf
	// KindAnyOf is an inclusive union composition
	KindAnyOf
)

// String returns the keyword name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRef:
		return "$ref"
	case KindAllOf:
		return "allOf"
	case KindOneOf:
		return "oneOf"
	case KindAnyOf:
		return "anyOf"
	default:
		return "typed"
	}
}

// Schema is a view over a decoded schema object. It shares storage with the
// document; mutate through the map only when a copy is not required.
type Schema map[string]any

// From returns v as a Schema when it is an object.
func From(v any) (Schema, bool) {
	m, ok := v.(map[string]any)
	return Schema(m), ok
}

// Kind returns the governing keyword of s.
func (s Schema) Kind() Kind {
	switch {
	case s.Ref() != "":
		return KindRef
	case s.HasAllOf():
		return KindAllOf
	case len(s.OneOf()) > 0:
		return KindOneOf
	case len(s.AnyOf()) > 0:
		return KindAnyOf
	default:
		return KindTyped
	}
}

// Ref returns the $ref pointer, or "" if absent or not a string.
func (s Schema) Ref() string {
	ref, _ := s["$ref"].(string)
	return ref
}

// HasAllOf reports whether s carries an allOf array.
func (s Schema) HasAllOf() bool {
	_, ok := s["allOf"].([]any)
	return ok
}

// AllOf returns the allOf members.
func (s Schema) AllOf() []any {
	items, _ := s["allOf"].([]any)
	return items
}

// OneOf returns the oneOf members.
func (s Schema) OneOf() []any {
	items, _ := s["oneOf"].([]any)
	return items
}

// AnyOf returns the anyOf members.
func (s Schema) AnyOf() []any {
	items, _ := s["anyOf"].([]any)
	return items
}

// Properties returns the properties object and whether one is present.
func (s Schema) Properties() (map[string]any, bool) {
	props, ok := s["properties"].(map[string]any)
	return props, ok
}

// Required returns the string entries of the required list.
func (s Schema) Required() []string {
	switch r := s["required"].(type) {
	case []any:
		out := make([]string, 0, len(r))
		for _, v := range r {
			if name, ok := v.(string); ok {
				out = append(out, name)
			}
		}
		return out
	case []string:
		return r
	}
	return nil
}

// Items returns the items schema of an array node.
func (s Schema) Items() any {
	return s["items"]
}

// Enum returns the enum values.
func (s Schema) Enum() []any {
	values, _ := s["enum"].([]any)
	return values
}

// Example returns the example value and whether the key is present.
// A present key with a null value is reported as present.
func (s Schema) Example() (any, bool) {
	v, ok := s["example"]
	return v, ok
}

// Default returns the default value and whether the key is present.
func (s Schema) Default() (any, bool) {
	v, ok := s["default"]
	return v, ok
}

// Format returns the string format, or "".
func (s Schema) Format() string {
	f, _ := s["format"].(string)
	return f
}

// Title returns the title and whether it is a non-empty string.
func (s Schema) Title() (string, bool) {
	t, _ := s["title"].(string)
	return t, t != ""
}
