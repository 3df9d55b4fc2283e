// Package bind converts loosely-typed source values into concrete Go
// destinations at runtime.
//
// The engine is a single recursive dispatcher over the destination's shape:
// registered enums resolve names, flag strings and integral literals;
// primitives coerce under the configured conversion categories; slices,
// arrays and string-keyed maps bind element-wise; structs bind either by
// member name from a mapping or by position from a sequence of matching
// arity. Anything else fails with one of the closed set of Codes.
//
// Binding is strict and all-or-nothing: the first failure aborts the call
// and reports the offending path, and no partially-filled destination is
// ever returned.
package bind
