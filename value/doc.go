// Package value models the loosely typed source side of a binding: a tagged
// union over null, bool, integer, float, string, ordered sequences, and
// ordered string-keyed mappings.
//
// Values are immutable once constructed (Mapping is the builder exception,
// populated before it is handed to the binder). Mapping preserves insertion
// order and keeps keys unique.
package value
