package bind

import (
	"fmt"
	"reflect"

	"valuecast/descriptor"
	"valuecast/value"
)

// bindCollection fills a slice or array from a sequence source. Arrays
// insist on an exact length match; slices take whatever the source has.
func (b *Binder) bindCollection(v value.Value, d *descriptor.Descriptor, depth int) (reflect.Value, error) {
	if v.Kind() != value.KindSequence {
		return reflect.Value{}, notAssignable(v, d.Type, "")
	}

	items := v.Items()

	if d.ArrayLen >= 0 && len(items) != d.ArrayLen {
		detail := fmt.Sprintf(": want %d elements, got %d", d.ArrayLen, len(items))
		return reflect.Value{}, notAssignable(v, d.Type, detail)
	}

	var out reflect.Value
	if d.ArrayLen >= 0 {
		out = reflect.New(d.Type).Elem()
	} else {
		out = reflect.MakeSlice(d.Type, len(items), len(items))
	}

	for i, item := range items {
		elem, err := b.bindElement(item, d.Elem, depth+1)
		if err != nil {
			return reflect.Value{}, prefix(err, fmt.Sprintf("[%d]", i))
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

// bindElement binds one collection element. Null elements become the
// element type's zero value even when the type itself could not absorb a
// null at the top level; a null slot in a sequence of ints reads as 0.
func (b *Binder) bindElement(item value.Value, elem reflect.Type, depth int) (reflect.Value, error) {
	if item.IsNull() {
		return reflect.Zero(elem), nil
	}

	return b.bind(item, elem, depth)
}

// bindTuple fills a struct from a sequence source by position: the i-th
// element binds to the i-th settable member in declaration order.
func (b *Binder) bindTuple(v value.Value, d *descriptor.Descriptor, depth int) (reflect.Value, error) {
	items := v.Items()

	if len(items) != len(d.Members) {
		detail := fmt.Sprintf(": want %d components, got %d", len(d.Members), len(items))
		return reflect.Value{}, notAssignable(v, d.Type, detail)
	}

	out := reflect.New(d.Type).Elem()

	for i, m := range d.Members {
		bound, err := b.bind(items[i], m.Type, depth+1)
		if err != nil {
			return reflect.Value{}, prefix(err, m.Normalized)
		}

		out.Field(m.Index).Set(bound)
	}

	return out, nil
}
