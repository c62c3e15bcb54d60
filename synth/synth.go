package synth

import (
	"maps"
	"slices"

	"github.com/ooapi/oasprep/resolver"
	"github.com/ooapi/oasprep/schema"
)

const (
	// MaxDepth is the deepest recursion level that is still synthesized
	MaxDepth = 15
	// RevisitDepth is the deepest level at which a reference on the current
	// branch may be followed a second time
	RevisitDepth = 3
	// ArrayItemDepth bounds the depth of arrays that include an item
	ArrayItemDepth = 4
)

// formatExamples holds the canned values of string formats.
var formatExamples = map[string]string{
	"date-time": "2024-01-01T00:00:00Z",
	"date":      "2024-01-01",
	"email":     "user@example.com",
	"uri":       "https://example.com",
	"uuid":      "123e4567-e89b-12d3-a456-426614174000",
}

// Synthesizer generates examples for schemas of one document.
type Synthesizer struct {
	root map[string]any
}

// New creates a Synthesizer resolving references against root.
func New(root map[string]any) *Synthesizer {
	return &Synthesizer{root: root}
}

// Synthesize returns an example for node resolved against root, or nil.
func Synthesize(node any, root map[string]any) any {
	return New(root).Example(node)
}

// Example returns an example for node, or nil.
func (s *Synthesizer) Example(node any) any {
	return s.synthesize(node, nil, 0)
}

// ExampleForRef returns an example for the schema at ref, or nil.
func (s *Synthesizer) ExampleForRef(ref string) any {
	return s.Example(map[string]any{"$ref": ref})
}

func (s *Synthesizer) synthesize(node any, trail refTrail, depth int) any {
	sch, ok := schema.From(node)
	if !ok || depth > MaxDepth {
		return nil
	}

	if ref := sch.Ref(); ref != "" {
		return s.followRef(ref, trail, depth)
	}

	if example, ok := sch.Example(); ok {
		return example
	}

	switch sch.Kind() {
	case schema.KindAllOf:
		merged := make(map[string]any)
		for _, member := range sch.AllOf() {
			if obj, ok := s.synthesize(member, trail, depth+1).(map[string]any); ok {
				maps.Copy(merged, obj)
			}
		}
		if len(merged) == 0 {
			return nil
		}
		return merged
	case schema.KindOneOf:
		return s.synthesize(sch.OneOf()[0], trail, depth+1)
	case schema.KindAnyOf:
		return s.synthesize(sch.AnyOf()[0], trail, depth+1)
	}

	return s.typed(sch, trail, depth)
}

func (s *Synthesizer) followRef(ref string, trail refTrail, depth int) any {
	seen := trail.count(ref)
	if seen >= 2 || (seen >= 1 && depth > RevisitDepth) {
		return nil
	}
	target, ok := resolver.Resolve(ref, s.root)
	if !ok {
		return nil
	}
	return s.synthesize(target, trail.with(ref), depth+1)
}

func (s *Synthesizer) typed(sch schema.Schema, trail refTrail, depth int) any {
	typ := sch.PrimaryType()

	if typ == "array" {
		if items := sch.Items(); items != nil {
			item := s.synthesize(items, trail, depth+1)
			if item != nil && depth < ArrayItemDepth {
				return []any{item}
			}
		}
		return []any{}
	}

	if sch.IsObject() {
		props, _ := sch.Properties()
		example := make(map[string]any, len(props))
		for name, prop := range props {
			if v := s.synthesize(prop, trail, depth+1); v != nil {
				example[name] = v
			}
		}
		if len(example) == 0 {
			return nil
		}
		return example
	}

	if values := sch.Enum(); len(values) > 0 {
		return values[0]
	}
	if def, ok := sch.Default(); ok {
		return def
	}

	switch typ {
	case "string":
		if v, ok := formatExamples[sch.Format()]; ok {
			return v
		}
		return "string"
	case "number", "integer":
		return 0
	case "boolean":
		return false
	default:
		return nil
	}
}

// refTrail is the ordered list of references followed on one branch.
// It is never appended to in place, so sibling branches cannot observe each
// other's visits.
type refTrail []string

func (t refTrail) count(ref string) int {
	n := 0
	for _, r := range t {
		if r == ref {
			n++
		}
	}
	return n
}

func (t refTrail) with(ref string) refTrail {
	return append(slices.Clip(t), ref)
}

// IsEmpty reports whether v is not a useful example: nil, an empty object,
// an empty array or an empty string. Zero numbers and false are useful.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	default:
		return false
	}
}
