// Package resolver resolves local JSON pointer references ("#/a/b/c")
// against a generic OpenAPI document tree.
//
// Pointers are split on "/" and walked through nested objects only. Tokens
// are used verbatim: "~0" and "~1" are not unescaped and array indices are not
// supported, because component references never need either. A pointer that
// cannot be walked to completion is reported as unresolved rather than as a
// failure of the whole run:
//
//	target, ok := resolver.Resolve("#/components/schemas/Pet", doc)
//	if !ok {
//	    // leave the referring site untouched
//	}
//
// Lookup performs the same walk and returns an *oaserrors.ReferenceError that
// names the segment where the walk stopped, for diagnostics.
package resolver
