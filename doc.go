// Package oasprep prepares OpenAPI documents for documentation renderers.
//
// Renderers differ in how much schema composition they can display. oasprep
// rewrites request body schemas built from nested allOf compositions into
// shapes a given renderer handles, and fills in response examples that the
// source document leaves out.
//
// # Overview
//
// The library consists of these packages, leaves first:
//
//   - parser: Load a JSON or YAML document into a generic tree and write it back
//   - resolver: Resolve "#/..." JSON pointers against the root document
//   - schema: Classify a schema node ($ref, allOf, oneOf, anyOf, typed)
//   - composer: Flatten allOf compositions into merged or one-level forms
//   - synth: Synthesize a representative example value for a schema
//   - adapter: Apply one of the renderer modes across a whole document
//
// # Quick Start
//
//	import "github.com/ooapi/oasprep/adapter"
//
//	result, err := adapter.ApplyWithOptions(
//		adapter.WithFilePath("openapi.json"),
//		adapter.WithMode(adapter.ModeFlattenExamples),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("flattened %d request bodies, added %d examples\n",
//		result.Flattened, result.Examples.Added)
//
// # Modes
//
//   - merge: replace each allOf request body with a single object whose
//     properties and required fields are merged (Scalar)
//   - flatten: register a one-level allOf schema per request body under
//     components.schemas and point the body at it (Zudoku)
//   - flatten-examples: flatten, then add a synthesized example to every
//     response content entry that has none (Spotlight)
//
// # Command Line
//
// The oasprep command wraps the adapter:
//
//	oasprep --target merge openapi.json openapi.scalar.json
//
// The oasprep-mcp command serves the same operations as MCP tools over stdio.
package oasprep
