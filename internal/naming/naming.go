package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RequestSuffix is appended to every derived request schema name.
const RequestSuffix = "Request"

// ToTitleCase upper-cases the first rune and leaves the rest untouched.
// The first rune uses the full Unicode upper mapping, so "ßeta" becomes "SSeta".
// Example: "users" -> "Users"
// Example: "{id}" -> "{id}"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// PathWords splits an API path into the words used for name derivation.
// Slashes, hyphens and spaces separate words; empty words are dropped.
// Example: "/course-offerings/{id}" -> ["course", "offerings", "{id}"]
func PathWords(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '-' || r == ' '
	})
}

// RequestSchemaName derives the component name for a flattened request body.
// Each path word is title-cased and concatenated, followed by the title-cased
// method and RequestSuffix.
// Example: ("/persons/{personId}", "patch") -> "Persons{personId}PatchRequest"
func RequestSchemaName(path, method string) string {
	var b strings.Builder
	for _, w := range PathWords(path) {
		b.WriteString(ToTitleCase(w))
	}
	b.WriteString(ToTitleCase(method))
	b.WriteString(RequestSuffix)
	return b.String()
}
