// Package adapter prepares OpenAPI documents for documentation renderers that
// cannot display nested schema composition or lack response examples.
//
// Three modes are available, each also selectable by the renderer it was
// written for:
//
//   - ModeMerge ("scalar"): every JSON request body schema carrying allOf is
//     replaced in place by a single object with merged properties.
//   - ModeFlatten ("zudoku"): every such schema is flattened to a one-level
//     allOf, registered under components.schemas with a name derived from the
//     path and method (see naming.RequestSchemaName), and the request body is
//     rewritten to reference it.
//   - ModeFlattenExamples ("spotlight"): ModeFlatten followed by a pass that
//     synthesizes an example for every response content entry lacking one.
//
// # Quick Start
//
//	result, err := adapter.ApplyWithOptions(
//	    adapter.WithFilePath("openapi.json"),
//	    adapter.WithMode(adapter.ModeFlattenExamples),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("flattened %d request bodies, added %d examples\n",
//	    result.Flattened, result.Examples.Added)
//
// Or, with an already decoded document:
//
//	a := adapter.New(adapter.ModeMerge)
//	result, err := a.Apply(doc)
//
// # Mutation
//
// Apply mutates the document in place. Paths, path items, responses and
// content entries are visited in sorted key order from snapshots taken before
// any mutation, so the output is deterministic. Two operations that derive the
// same component name overwrite each other: the later one in that order wins,
// and each overwrite is logged at warn level and listed in Result.Collisions.
//
// Running ModeMerge or ModeFlatten again on its own output changes nothing.
// Running ModeFlattenExamples again does not replace examples it added.
package adapter
