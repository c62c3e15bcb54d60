package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/ooapi/oasprep/internal/fileutil"
	"github.com/ooapi/oasprep/oaserrors"
)

// MarshalJSON encodes doc as JSON with a 2-space indent.
// HTML characters are not escaped and no trailing newline is written.
func MarshalJSON(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("parser: marshal JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML encodes doc as YAML. JSON numbers are emitted as YAML numbers.
func MarshalYAML(doc any) ([]byte, error) {
	data, err := yaml.Marshal(toYAMLValue(doc))
	if err != nil {
		return nil, fmt.Errorf("parser: marshal YAML: %w", err)
	}
	return data, nil
}

// Marshal encodes doc in the requested format. Unknown formats encode as JSON.
func Marshal(doc any, format SourceFormat) ([]byte, error) {
	if format == SourceFormatYAML {
		return MarshalYAML(doc)
	}
	return MarshalJSON(doc)
}

// WriteFile encodes doc in the format implied by path and writes it atomically.
// Failures are reported as *oaserrors.WriteError.
func WriteFile(path string, doc map[string]any) error {
	data, err := Marshal(doc, FormatForPath(path))
	if err != nil {
		return &oaserrors.WriteError{Path: path, Message: "encode document", Cause: err}
	}
	if err := fileutil.WriteAtomic(path, data, fileutil.ReadableByAll); err != nil {
		return &oaserrors.WriteError{Path: path, Cause: err}
	}
	return nil
}
