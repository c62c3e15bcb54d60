package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/ooapi/oasprep/oaserrors"
)

// Parser handles loading OpenAPI documents into generic trees
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return LoggerOrNop(p.Logger)
}

// ParseResult contains a loaded document and metadata about its source.
//
// The preprocessing modes mutate Data in place. Parse the source again to
// obtain a fresh copy.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For byte or reader input it is "ParseBytes.json", "ParseReader.yaml", etc.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the value of the "openapi" (or "swagger") field, empty if absent
	Version string
	// Data is the document tree
	Data map[string]any
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse reads and decodes the document at specPath.
// The format is chosen from the file extension; unknown extensions are decoded as JSON.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	res, err := p.parseBytesAs(data, FormatForPath(specPath), specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader decodes a document from an io.Reader, detecting the format from content.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseDetected(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes a document from a byte slice, detecting the format from content.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseDetected(data, "ParseBytes")
}

func (p *Parser) parseDetected(data []byte, sourceName string) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		return nil, &oaserrors.ParseError{Path: sourceName, Message: "empty document"}
	}
	sourcePath := sourceName + "." + string(format)
	res, err := p.parseBytesAs(data, format, sourcePath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = sourcePath
	return res, nil
}

// parseBytesAs decodes data in the given format and fills in the metadata.
func (p *Parser) parseBytesAs(data []byte, format SourceFormat, sourcePath string) (*ParseResult, error) {
	var doc map[string]any
	var err error
	switch format {
	case SourceFormatYAML:
		doc, err = decodeYAML(data, sourcePath)
	default:
		format = SourceFormatJSON
		doc, err = decodeJSON(data, sourcePath)
	}
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		SourceFormat: format,
		Version:      detectVersion(doc),
		Data:         doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	p.log().Debug("parsed document",
		"source", sourcePath,
		"format", string(format),
		"version", result.Version,
		"paths", result.Stats.PathCount,
		"schemas", result.Stats.SchemaCount,
	)
	return result, nil
}

// decodeJSON decodes a single top-level JSON object, keeping numbers as json.Number.
func decodeJSON(data []byte, sourcePath string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, jsonParseError(data, sourcePath, err)
	}
	if doc == nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is not a JSON object"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		line, col := lineColumn(data, dec.InputOffset())
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    line,
			Column:  col,
			Message: "unexpected data after top-level JSON value",
		}
	}
	return doc, nil
}

// jsonParseError converts an encoding/json error into a ParseError with position.
func jsonParseError(data []byte, sourcePath string, err error) error {
	parseErr := &oaserrors.ParseError{Path: sourcePath, Message: "invalid JSON", Cause: err}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		parseErr.Line, parseErr.Column = lineColumn(data, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		parseErr.Message = "document is not a JSON object"
		parseErr.Line, parseErr.Column = lineColumn(data, typeErr.Offset)
	case errors.Is(err, io.EOF):
		parseErr.Message = "empty document"
		parseErr.Cause = nil
	}
	return parseErr
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// decodeYAML decodes a YAML mapping and normalizes it to JSON-compatible shapes.
func decodeYAML(data []byte, sourcePath string) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "invalid YAML", Cause: err}
	}
	doc, ok := normalizeYAMLValue(raw).(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is not a YAML mapping"}
	}
	return doc, nil
}

// detectVersion returns the declared OpenAPI or Swagger version, if any.
func detectVersion(doc map[string]any) string {
	for _, key := range []string{"openapi", "swagger"} {
		switch v := doc[key].(type) {
		case string:
			return v
		case json.Number:
			return v.String()
		case nil:
			continue
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}
