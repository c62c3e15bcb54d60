package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "lowercase word", input: "users", want: "Users"},
		{name: "already title", input: "Users", want: "Users"},
		{name: "rest untouched", input: "courseOfferings", want: "CourseOfferings"},
		{name: "brace first", input: "{id}", want: "{id}"},
		{name: "digit first", input: "v5", want: "V5"},
		{name: "unicode first rune", input: "élève", want: "Élève"},
		{name: "special upper mapping", input: "ßeta", want: "SSeta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTitleCase(tt.input))
		})
	}
}

func TestPathWords(t *testing.T) {
	assert.Equal(t, []string{"course", "offerings", "{id}"}, PathWords("/course-offerings/{id}"))
	assert.Equal(t, []string{"a", "b"}, PathWords("//a--b/ "))
	assert.Empty(t, PathWords("/"))
}

func TestRequestSchemaName(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   string
	}{
		{path: "/persons", method: "post", want: "PersonsPostRequest"},
		{path: "/persons/{personId}", method: "patch", want: "Persons{personId}PatchRequest"},
		{path: "/course-offerings/{id}/associations", method: "put", want: "CourseOfferings{id}AssociationsPutRequest"},
		{path: "/", method: "post", want: "PostRequest"},
		{path: "/news_feeds", method: "post", want: "News_feedsPostRequest"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, RequestSchemaName(tt.path, tt.method))
		})
	}
}

func TestRequestSchemaName_Collision(t *testing.T) {
	// Hyphens and slashes both separate words, so these two paths collide.
	assert.Equal(t,
		RequestSchemaName("/academic-sessions", "post"),
		RequestSchemaName("/academic/sessions", "post"),
	)
}
