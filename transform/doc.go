// Package transform provides copy-on-write property primitives for
// string-keyed records. Every function leaves its input untouched and
// returns a shallow copy when something changed. These are the building
// blocks the lookup remapper applies to each field definition.
package transform
