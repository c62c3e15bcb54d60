// Package parser loads OpenAPI documents into a generic tree and writes them back.
//
// Documents are kept as map[string]any rather than typed structs: the
// preprocessors rewrite arbitrary schema nodes in place and must round-trip
// every field they do not touch, including vendor extensions.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("paths: %d, schemas: %d\n", result.Stats.PathCount, result.Stats.SchemaCount)
//
// # Formats
//
// The input format is chosen from the file extension (.yaml and .yml are YAML,
// anything else is JSON). Byte and reader input is detected from its content.
// JSON numbers are decoded as json.Number so they are written back exactly as
// read. YAML mappings with non-string keys, such as unquoted status codes, are
// normalized to string keys.
//
// # Writing
//
// MarshalJSON produces 2-space indented JSON without HTML escaping.
// WriteFile picks JSON or YAML from the destination extension and replaces
// the destination atomically, so a failed write never leaves a partial file.
package parser
