package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		s    Schema
		want Kind
	}{
		{name: "empty", s: Schema{}, want: KindTyped},
		{name: "typed", s: Schema{"type": "string"}, want: KindTyped},
		{name: "ref", s: Schema{"$ref": "#/components/schemas/A"}, want: KindRef},
		{name: "ref beats allOf", s: Schema{"$ref": "#/a", "allOf": []any{}}, want: KindRef},
		{name: "empty ref ignored", s: Schema{"$ref": "", "allOf": []any{}}, want: KindAllOf},
		{name: "non-string ref ignored", s: Schema{"$ref": 1, "type": "string"}, want: KindTyped},
		{name: "empty allOf counts", s: Schema{"allOf": []any{}}, want: KindAllOf},
		{name: "allOf beats oneOf", s: Schema{"allOf": []any{Schema{}}, "oneOf": []any{Schema{}}}, want: KindAllOf},
		{name: "non-array allOf ignored", s: Schema{"allOf": map[string]any{}}, want: KindTyped},
		{name: "oneOf beats anyOf", s: Schema{"oneOf": []any{map[string]any{}}, "anyOf": []any{map[string]any{}}}, want: KindOneOf},
		{name: "empty oneOf ignored", s: Schema{"oneOf": []any{}, "anyOf": []any{map[string]any{}}}, want: KindAnyOf},
		{name: "empty anyOf ignored", s: Schema{"anyOf": []any{}, "type": "object"}, want: KindTyped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Kind())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "$ref", KindRef.String())
	assert.Equal(t, "allOf", KindAllOf.String())
	assert.Equal(t, "oneOf", KindOneOf.String())
	assert.Equal(t, "anyOf", KindAnyOf.String())
	assert.Equal(t, "typed", KindTyped.String())
}

func TestFrom(t *testing.T) {
	s, ok := From(map[string]any{"type": "string"})
	assert.True(t, ok)
	assert.Equal(t, "string", s.PrimaryType())

	_, ok = From("string")
	assert.False(t, ok)
	_, ok = From(nil)
	assert.False(t, ok)
}

func TestRequired(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Schema{"required": []any{"a", 1, "b"}}.Required())
	assert.Equal(t, []string{"x"}, Schema{"required": []string{"x"}}.Required())
	assert.Nil(t, Schema{"required": true}.Required())
	assert.Nil(t, Schema{}.Required())
}

func TestValueAccessors(t *testing.T) {
	s := Schema{
		"example":    nil,
		"default":    "d",
		"format":     "uuid",
		"title":      "Thing",
		"enum":       []any{"x", "y"},
		"items":      map[string]any{"type": "string"},
		"properties": map[string]any{"id": map[string]any{}},
	}

	example, ok := s.Example()
	assert.True(t, ok, "null example is still present")
	assert.Nil(t, example)

	def, ok := s.Default()
	assert.True(t, ok)
	assert.Equal(t, "d", def)

	assert.Equal(t, "uuid", s.Format())
	assert.Equal(t, []any{"x", "y"}, s.Enum())
	assert.Equal(t, map[string]any{"type": "string"}, s.Items())

	title, ok := s.Title()
	assert.True(t, ok)
	assert.Equal(t, "Thing", title)

	props, ok := s.Properties()
	assert.True(t, ok)
	assert.Len(t, props, 1)

	_, ok = Schema{"title": ""}.Title()
	assert.False(t, ok)
	_, ok = Schema{}.Example()
	assert.False(t, ok)
}

func TestPrimaryType(t *testing.T) {
	tests := []struct {
		name     string
		typ      any
		want     string
		nullable bool
	}{
		{name: "string form", typ: "integer", want: "integer"},
		{name: "array with null", typ: []any{"null", "string"}, want: "string", nullable: true},
		{name: "only null", typ: []any{"null"}, want: "null", nullable: true},
		{name: "string slice", typ: []string{"boolean"}, want: "boolean"},
		{name: "non-string entries skipped", typ: []any{1, "number"}, want: "number"},
		{name: "empty string", typ: "", want: ""},
		{name: "absent", typ: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Schema{}
			if tt.typ != nil {
				s["type"] = tt.typ
			}
			assert.Equal(t, tt.want, s.PrimaryType())
			assert.Equal(t, tt.nullable, s.IsNullable())
		})
	}
}

func TestIsObject(t *testing.T) {
	assert.True(t, Schema{"type": "object"}.IsObject())
	assert.True(t, Schema{"type": []any{"object", "null"}}.IsObject())
	assert.True(t, Schema{"properties": map[string]any{}}.IsObject())
	assert.False(t, Schema{"type": "array"}.IsObject())
}
