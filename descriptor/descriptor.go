package descriptor

import (
	"reflect"

	"valuecast/primitive"
)

// EnumMember is one defined (name, value) pair of an enum. Value holds the
// member's bits; negative members of signed enums are stored sign-extended
// to 64 bits, i.e. uint64(int64(v)).
type EnumMember struct {
	Name  string
	Value uint64
}

// EnumSpec is the registered member table of an enum destination type.
// Width and Signed are derived from the underlying Go type at registration.
type EnumSpec struct {
	Width   int // 8, 16, 32 or 64
	Signed  bool
	Flags   bool
	Members []EnumMember
}

// Mask returns the bitmask covering the underlying width.
func (e *EnumSpec) Mask() uint64 {
	if e.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(e.Width) - 1
}

// MemberByName finds a defined member by exact name.
func (e *EnumSpec) MemberByName(name string) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	return EnumMember{}, false
}

// MemberByValue finds the first defined member holding the given bits.
func (e *EnumSpec) MemberByValue(v uint64) (EnumMember, bool) {
	for _, m := range e.Members {
		if m.Value&e.Mask() == v&e.Mask() {
			return m, true
		}
	}
	return EnumMember{}, false
}

// Names returns the member names in definition order.
func (e *EnumSpec) Names() []string {
	out := make([]string, len(e.Members))
	for i, m := range e.Members {
		out[i] = m.Name
	}
	return out
}

// Member is one settable member of an object destination.
type Member struct {
	Name       string       // declared field name
	Normalized string       // canonical matching key
	Type       reflect.Type // declared member type
	Index      int          // struct field index
}

// Descriptor describes a destination shape for the bind dispatcher. A
// Descriptor is immutable once built and safe for concurrent use.
type Descriptor struct {
	Type  reflect.Type
	Shape Shape

	Prim primitive.KindEnum // ShapePrimitive

	Enum *EnumSpec // ShapeEnum

	Elem     reflect.Type // ShapePointer target, ShapeCollection element, ShapeMap value
	Key      reflect.Type // ShapeMap key
	ArrayLen int          // fixed length for arrays, -1 otherwise

	Members []Member // ShapeObject, declaration order
	byNorm  map[string]int
}

// MemberByKey finds the member whose normalized name equals key exactly
// (case-sensitive, ordinal comparison).
func (d *Descriptor) MemberByKey(key string) (Member, bool) {
	i, ok := d.byNorm[key]
	if !ok {
		return Member{}, false
	}
	return d.Members[i], true
}

// MemberNames returns the normalized member names in declaration order.
func (d *Descriptor) MemberNames() []string {
	out := make([]string, len(d.Members))
	for i, m := range d.Members {
		out[i] = m.Normalized
	}
	return out
}
