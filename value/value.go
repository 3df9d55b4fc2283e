package value

import (
	"fmt"
	"sort"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether the kind is a non-container, non-null kind.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindInt, KindFloat, KindString:
		return true
	}
}

// Value is a loosely typed source value: a scalar, an ordered sequence, or an
// ordered key/value mapping. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	mp   *Mapping
}

func Null() Value              { return Value{} }
func Bool(b bool) Value        { return Value{kind: KindBool, b: b} }
func Int(i int64) Value        { return Value{kind: KindInt, i: i} }
func Float(f float64) Value    { return Value{kind: KindFloat, f: f} }
func String(s string) Value    { return Value{kind: KindString, s: s} }
func Sequence(vs ...Value) Value {
	return Value{kind: KindSequence, seq: vs}
}

// Map wraps an ordered Mapping. A nil mapping becomes an empty one.
func Map(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, mp: m}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value: %s accessed as %s", v.kind, k))
	}
}

func (v Value) Bool() bool {
	v.mustBe(KindBool)
	return v.b
}

func (v Value) Int() int64 {
	v.mustBe(KindInt)
	return v.i
}

func (v Value) Float() float64 {
	v.mustBe(KindFloat)
	return v.f
}

func (v Value) Text() string {
	v.mustBe(KindString)
	return v.s
}

func (v Value) Items() []Value {
	v.mustBe(KindSequence)
	return v.seq
}

func (v Value) Mapping() *Mapping {
	v.mustBe(KindMapping)
	return v.mp
}

// Native converts the value back to plain Go data: nil, bool, int64, float64,
// string, []any, or map[string]any. Mapping key order is lost.
func (v Value) Native() any {
	switch v.kind {
	default:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Native()
		}
		return out
	case KindMapping:
		out := make(map[string]any, v.mp.Len())
		for _, k := range v.mp.keys {
			out[k] = v.mp.entries[k].Native()
		}
		return out
	}
}

// FromGo converts plain Go data into a Value. Maps are keyed in sorted order
// so the result is deterministic; use a *Mapping directly when insertion
// order matters. Unsupported Go kinds return an error.
func FromGo(data any) (Value, error) {
	switch d := data.(type) {
	case nil:
		return Null(), nil
	case Value:
		return d, nil
	case *Mapping:
		return Map(d), nil
	case bool:
		return Bool(d), nil
	case int:
		return Int(int64(d)), nil
	case int8:
		return Int(int64(d)), nil
	case int16:
		return Int(int64(d)), nil
	case int32:
		return Int(int64(d)), nil
	case int64:
		return Int(d), nil
	case uint:
		return Int(int64(d)), nil
	case uint8:
		return Int(int64(d)), nil
	case uint16:
		return Int(int64(d)), nil
	case uint32:
		return Int(int64(d)), nil
	case uint64:
		if d > 1<<63-1 {
			return Null(), fmt.Errorf("value: uint64 %d does not fit in int64", d)
		}
		return Int(int64(d)), nil
	case float32:
		return Float(float64(d)), nil
	case float64:
		return Float(d), nil
	case string:
		return String(d), nil
	case []any:
		seq := make([]Value, len(d))
		for i, e := range d {
			v, err := FromGo(e)
			if err != nil {
				return Null(), err
			}
			seq[i] = v
		}
		return Sequence(seq...), nil
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := NewMapping()
		for _, k := range keys {
			v, err := FromGo(d[k])
			if err != nil {
				return Null(), err
			}
			m.Set(k, v)
		}
		return Map(m), nil
	default:
		return Null(), fmt.Errorf("value: unsupported Go type %T", data)
	}
}
