package synth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func docWithSchemas(schemas map[string]any) map[string]any {
	return map[string]any{
		"components": map[string]any{"schemas": schemas},
	}
}

func TestSynthesize_Primitives(t *testing.T) {
	tests := []struct {
		name   string
		schema map[string]any
		want   any
	}{
		{name: "integer", schema: map[string]any{"type": "integer"}, want: 0},
		{name: "number", schema: map[string]any{"type": "number"}, want: 0},
		{name: "boolean", schema: map[string]any{"type": "boolean"}, want: false},
		{name: "plain string", schema: map[string]any{"type": "string"}, want: "string"},
		{name: "uuid", schema: map[string]any{"type": "string", "format": "uuid"}, want: "123e4567-e89b-12d3-a456-426614174000"},
		{name: "date-time", schema: map[string]any{"type": "string", "format": "date-time"}, want: "2024-01-01T00:00:00Z"},
		{name: "date", schema: map[string]any{"type": "string", "format": "date"}, want: "2024-01-01"},
		{name: "email", schema: map[string]any{"type": "string", "format": "email"}, want: "user@example.com"},
		{name: "uri", schema: map[string]any{"type": "string", "format": "uri"}, want: "https://example.com"},
		{name: "unknown format", schema: map[string]any{"type": "string", "format": "byte"}, want: "string"},
		{name: "null type", schema: map[string]any{"type": "null"}, want: nil},
		{name: "unknown type", schema: map[string]any{"type": "file"}, want: nil},
		{name: "no type", schema: map[string]any{"description": "anything"}, want: nil},
		{name: "type array skips null", schema: map[string]any{"type": []any{"null", "integer"}}, want: 0},
		{name: "type array of null", schema: map[string]any{"type": []any{"null"}}, want: nil},
		{name: "enum", schema: map[string]any{"type": "string", "enum": []any{"active", "inactive"}}, want: "active"},
		{name: "empty enum ignored", schema: map[string]any{"type": "integer", "enum": []any{}}, want: 0},
		{name: "enum before default", schema: map[string]any{"enum": []any{"a"}, "default": "b"}, want: "a"},
		{name: "default", schema: map[string]any{"type": "integer", "default": 42}, want: 42},
		{name: "null default", schema: map[string]any{"type": "integer", "default": nil}, want: nil},
		{name: "example wins", schema: map[string]any{"type": "integer", "example": "seven", "enum": []any{1}}, want: "seven"},
		{name: "null example", schema: map[string]any{"type": "integer", "example": nil}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Synthesize(tt.schema, nil))
		})
	}
}

func TestSynthesize_NonObjectInput(t *testing.T) {
	assert.Nil(t, Synthesize(nil, nil))
	assert.Nil(t, Synthesize("string", nil))
	assert.Nil(t, Synthesize([]any{map[string]any{"type": "string"}}, nil))
}

func TestSynthesize_Objects(t *testing.T) {
	t.Run("only non-null properties", func(t *testing.T) {
		s := map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":      map[string]any{"type": "string", "format": "uuid"},
				"age":     map[string]any{"type": "integer"},
				"ghost":   map[string]any{"type": "null"},
				"invalid": "not a schema",
			},
		}
		assert.Equal(t, map[string]any{
			"id":  "123e4567-e89b-12d3-a456-426614174000",
			"age": 0,
		}, Synthesize(s, nil))
	})

	t.Run("properties without type", func(t *testing.T) {
		s := map[string]any{"properties": map[string]any{"ok": map[string]any{"type": "boolean"}}}
		assert.Equal(t, map[string]any{"ok": false}, Synthesize(s, nil))
	})

	t.Run("empty object is no example", func(t *testing.T) {
		assert.Nil(t, Synthesize(map[string]any{"type": "object"}, nil))
		assert.Nil(t, Synthesize(map[string]any{"type": "object", "enum": []any{map[string]any{"a": 1}}}, nil))
	})
}

func TestSynthesize_Arrays(t *testing.T) {
	assert.Equal(t, []any{"string"}, Synthesize(map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, nil))
	assert.Equal(t, []any{}, Synthesize(map[string]any{"type": "array"}, nil))
	assert.Equal(t, []any{}, Synthesize(map[string]any{"type": "array", "items": map[string]any{"type": "object"}}, nil))

	nested := map[string]any{"type": "string"}
	for range 5 {
		nested = map[string]any{"type": "array", "items": nested}
	}
	// the array at depth 4 no longer shows its item
	assert.Equal(t, []any{[]any{[]any{[]any{[]any{}}}}}, Synthesize(nested, nil))
}

func TestSynthesize_Compositions(t *testing.T) {
	root := docWithSchemas(map[string]any{
		"A": map[string]any{"properties": map[string]any{"a": map[string]any{"type": "string"}, "shared": map[string]any{"type": "integer"}}},
	})

	tests := []struct {
		name   string
		schema map[string]any
		want   any
	}{
		{
			name: "allOf merges object members",
			schema: map[string]any{"allOf": []any{
				ref("A"),
				map[string]any{"properties": map[string]any{"shared": map[string]any{"type": "boolean"}}},
				map[string]any{"type": "string"},
				map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			}},
			want: map[string]any{"a": "string", "shared": false},
		},
		{name: "empty allOf", schema: map[string]any{"allOf": []any{}}, want: nil},
		{name: "allOf without objects", schema: map[string]any{"allOf": []any{map[string]any{"type": "string"}}}, want: nil},
		{name: "allOf before oneOf", schema: map[string]any{"allOf": []any{}, "oneOf": []any{map[string]any{"type": "string"}}}, want: nil},
		{
			name:   "oneOf first option",
			schema: map[string]any{"oneOf": []any{map[string]any{"type": "integer"}, map[string]any{"type": "string"}}},
			want:   0,
		},
		{
			name:   "oneOf before anyOf",
			schema: map[string]any{"oneOf": []any{map[string]any{"type": "boolean"}}, "anyOf": []any{map[string]any{"type": "string"}}},
			want:   false,
		},
		{
			name:   "anyOf first option",
			schema: map[string]any{"anyOf": []any{map[string]any{"type": "string", "format": "email"}}},
			want:   "user@example.com",
		},
		{
			name:   "empty oneOf falls through",
			schema: map[string]any{"oneOf": []any{}, "type": "integer"},
			want:   0,
		},
		{
			name:   "example beats allOf",
			schema: map[string]any{"example": map[string]any{"x": 1}, "allOf": []any{ref("A")}},
			want:   map[string]any{"x": 1},
		},
		{
			name:   "ref beats example",
			schema: map[string]any{"$ref": "#/components/schemas/A", "example": "ignored"},
			want:   map[string]any{"a": "string", "shared": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Synthesize(tt.schema, root))
		})
	}
}

func TestSynthesize_SelfReferentialNode(t *testing.T) {
	root := docWithSchemas(map[string]any{
		"Node": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       map[string]any{"type": "string"},
				"children": map[string]any{"type": "array", "items": ref("Node")},
			},
		},
	})
	node := root["components"].(map[string]any)["schemas"].(map[string]any)["Node"]

	got := Synthesize(node, root)

	assert.Equal(t, map[string]any{
		"id": "string",
		"children": []any{
			map[string]any{"id": "string", "children": []any{}},
		},
	}, got)
}

func TestSynthesize_UnresolvedReference(t *testing.T) {
	root := docWithSchemas(map[string]any{})

	assert.Nil(t, Synthesize(ref("DoesNotExist"), root))
	assert.Nil(t, Synthesize(map[string]any{"$ref": "other.json#/Pet"}, root))
	assert.Nil(t, New(root).ExampleForRef("#/components/schemas/DoesNotExist"))
}

func TestSynthesize_RevisitBound(t *testing.T) {
	t.Run("one nested instance near the root", func(t *testing.T) {
		root := docWithSchemas(map[string]any{
			"Node": map[string]any{"properties": map[string]any{
				"id":    map[string]any{"type": "string"},
				"child": ref("Node"),
			}},
		})

		// Node at depth 1, first revisit at depth 2, second revisit refused
		assert.Equal(t, map[string]any{
			"id":    "string",
			"child": map[string]any{"id": "string"},
		}, Synthesize(ref("Node"), root))
	})

	t.Run("revisit refused past the revisit depth", func(t *testing.T) {
		root := docWithSchemas(map[string]any{
			"Node": map[string]any{"properties": map[string]any{
				"id": map[string]any{"type": "string"},
				"wrap": map[string]any{"properties": map[string]any{
					"inner": map[string]any{"properties": map[string]any{
						"child": ref("Node"),
					}},
				}},
			}},
		})

		// first revisit happens at depth 4
		assert.Equal(t, map[string]any{"id": "string"}, Synthesize(ref("Node"), root))
	})
}

func TestSynthesize_SiblingBranchesAreIndependent(t *testing.T) {
	root := docWithSchemas(map[string]any{
		"Leaf": map[string]any{"properties": map[string]any{"id": map[string]any{"type": "integer"}}},
	})
	pair := map[string]any{"properties": map[string]any{
		"left":  ref("Leaf"),
		"right": ref("Leaf"),
		"more":  ref("Leaf"),
	}}

	// Leaf is already on the trail once; with a shared trail a sibling
	// would see it twice and be refused
	trail := refTrail{"#/components/schemas/Leaf"}
	got := New(root).synthesize(pair, trail, 0)

	leaf := map[string]any{"id": 0}
	assert.Equal(t, map[string]any{"left": leaf, "right": leaf, "more": leaf}, got)
	assert.Equal(t, refTrail{"#/components/schemas/Leaf"}, trail)
}

func TestRefTrail_WithDoesNotAlias(t *testing.T) {
	base := make(refTrail, 1, 8)
	base[0] = "#/a"

	left := base.with("#/b")
	right := base.with("#/c")

	assert.Equal(t, refTrail{"#/a", "#/b"}, left)
	assert.Equal(t, refTrail{"#/a", "#/c"}, right)
	assert.Equal(t, 1, left.count("#/a"))
	assert.Equal(t, 0, right.count("#/b"))
}

// chain builds schemas S0..S(n-1) where each links to the next through a
// "next" property; when cyclic the last links back to S0.
func chain(n int, cyclic bool) map[string]any {
	schemas := make(map[string]any, n)
	for i := range n {
		props := map[string]any{"id": map[string]any{"type": "string"}}
		switch {
		case i < n-1:
			props["next"] = ref(fmt.Sprintf("S%d", i+1))
		case cyclic:
			props["next"] = ref("S0")
		}
		schemas[fmt.Sprintf("S%d", i)] = map[string]any{"type": "object", "properties": props}
	}
	return docWithSchemas(schemas)
}

// nesting counts how many objects are linked through "next".
func nesting(v any) int {
	n := 0
	for {
		obj, ok := v.(map[string]any)
		if !ok {
			return n
		}
		n++
		v = obj["next"]
	}
}

func TestSynthesize_CycleTermination(t *testing.T) {
	for _, length := range []int{1, 2, 3, 4, 5, 8, 13} {
		for _, viaArray := range []bool{false, true} {
			t.Run(fmt.Sprintf("length %d array %v", length, viaArray), func(t *testing.T) {
				root := chain(length, true)
				if viaArray {
					schemas := root["components"].(map[string]any)["schemas"].(map[string]any)
					last := schemas[fmt.Sprintf("S%d", length-1)].(map[string]any)
					props := last["properties"].(map[string]any)
					props["next"] = map[string]any{"type": "array", "items": ref("S0")}
				}

				got := Synthesize(ref("S0"), root)

				require.NotNil(t, got)
				// each link costs two levels, so nothing deeper than the ceiling appears
				assert.LessOrEqual(t, nesting(got), MaxDepth/2+1)
			})
		}
	}
}

func TestSynthesize_DepthCeiling(t *testing.T) {
	root := chain(30, false)

	got := Synthesize(ref("S0"), root)

	// S(k) is synthesized at depth 2k+1 and its properties at 2k+2, so S7's
	// properties pass the ceiling and S6 is the deepest object produced
	assert.Equal(t, 7, nesting(got))
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "nil", v: nil, want: true},
		{name: "empty object", v: map[string]any{}, want: true},
		{name: "empty array", v: []any{}, want: true},
		{name: "empty string", v: "", want: true},
		{name: "zero", v: 0, want: false},
		{name: "false", v: false, want: false},
		{name: "string", v: "x", want: false},
		{name: "array", v: []any{nil}, want: false},
		{name: "object", v: map[string]any{"a": nil}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.v))
		})
	}
}
