// Package oaserrors provides structured error types for the oasprep library.
//
// Import path: github.com/ooapi/oasprep/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a document that could not be read, a
// reference that could not be followed, a bad option, and a failed write.
//
// # Error Types
//
//   - [ParseError]: JSON/YAML decoding failures of the input document
//   - [ReferenceError]: JSON pointer resolution failures
//   - [ConfigError]: Invalid configuration or input options
//   - [WriteError]: Failures while writing the transformed document
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrExternalReference]: Matches [ReferenceError] with IsExternal=true
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrWrite]: Matches any [WriteError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.json"))
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // The input was not valid JSON or YAML
//	}
//
// Extract error details with errors.As():
//
//	_, err := resolver.Lookup("#/components/schemas/Missing", doc)
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("missing segment %q in %s\n", refErr.Segment, refErr.Ref)
//	}
package oaserrors
