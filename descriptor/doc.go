// Package descriptor is the type-introspection side of binding: it
// classifies destination types into shapes (primitive, enum, pointer,
// collection, map, object) and caches one immutable Descriptor per type.
//
// Enum destinations are opt-in. Go has no enum declarations, so member
// tables are registered explicitly on a Service before first use, mirroring
// the tables a derive-style generator would emit.
package descriptor
