// Package naming provides the string helpers used to derive component names
// for flattened request bodies.
//
// All functions are pure and deterministic: the same path and method always
// produce the same name, so two operations that derive the same name collide
// and the later registration overwrites the earlier one.
package naming
