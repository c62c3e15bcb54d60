package mcpserver

import (
	"fmt"
	"strings"

	"github.com/ooapi/oasprep/parser"
)

// maxInlineSize bounds inline spec content.
const maxInlineSize = 10 << 20

// specInput represents the two ways an OAS spec can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk (.json, .yaml or .yml)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// resolve parses the spec from whichever input was provided. Each call
// returns a fresh document that the caller may mutate.
func (s specInput) resolve() (*parser.ParseResult, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.File != "" {
		return parser.ParseWithOptions(parser.WithFilePath(s.File))
	}
	if len(s.Content) > maxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead",
			len(s.Content), maxInlineSize)
	}
	return parser.ParseWithOptions(parser.WithReader(strings.NewReader(s.Content)))
}
