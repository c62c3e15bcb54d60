// Package schema provides a classified, read-only view over generic schema
// objects decoded from an OpenAPI document.
//
// A schema node can carry several competing keywords at once (a $ref next to
// a type, an allOf next to properties). Kind reports which one governs the
// node, checked in this order:
//
//  1. KindRef: a non-empty string "$ref"
//  2. KindAllOf: an "allOf" array, even an empty one
//  3. KindOneOf: a non-empty "oneOf" array
//  4. KindAnyOf: a non-empty "anyOf" array
//  5. KindTyped: everything else, driven by "type", "properties", "enum" and
//     the other value keywords
//
// Accessors tolerate malformed values and report them as absent.
package schema
