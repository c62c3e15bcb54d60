// Package synth generates representative example values for OpenAPI schemas.
//
// Synthesize walks a schema and returns a JSON-compatible value (maps,
// slices, strings, numbers, booleans), or nil when no useful example can be
// produced. A nil result is not an error: callers leave the site without an
// example.
//
// Recursive schema graphs are bounded per branch. Every recursive step
// increases the depth and nothing past MaxDepth is visited. Each branch
// carries its own trail of references followed so far; a reference already
// on the trail is followed once more only while the depth is at most
// RevisitDepth, and never a third time. Arrays only show an item while the
// array itself is shallower than ArrayItemDepth.
//
// For a node type the first of these that applies wins: $ref, example,
// allOf (object examples shallow-merged), the first oneOf option, the first
// anyOf option, then the type-driven value.
package synth
