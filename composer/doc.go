// Package composer flattens allOf compositions in request body schemas into
// shapes that simple documentation renderers can display.
//
// Two output shapes are supported:
//
//   - MergedProperties collapses the composition into a single object: every
//     inline and referenced property set is merged (last write wins, in
//     document order) and required names are unioned, sorted and
//     de-duplicated.
//   - FlatAllOf keeps referenced members as $ref entries but removes one level
//     of nesting, so the result's allOf holds the retained references followed
//     by exactly one inline object carrying the merged inline properties. Only
//     the outer required list is kept.
//
// In both shapes an anyOf found on a member of a referenced composition is
// hoisted onto the result. When the first anyOf option has no title, a copy
// of it receives DefaultAnyOfTitle (see WithAnyOfTitle); the referenced
// component is never modified.
//
// Flatten returns nil when the schema carries no allOf, in which case the
// caller leaves the schema as it is.
package composer
