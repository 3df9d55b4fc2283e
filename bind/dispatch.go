package bind

import (
	"reflect"

	"valuecast/descriptor"
	"valuecast/primitive"
	"valuecast/value"
)

// bind is the recursive dispatcher. Order matters: enums own their full
// source handling including null, then null short-circuits for everything
// else, then scalars try direct coercion and custom converters before the
// shape binders get a look.
func (b *Binder) bind(v value.Value, dst reflect.Type, depth int) (reflect.Value, error) {
	if depth >= b.opts.Depth() {
		return reflect.Value{}, failf(CodeUnavailable, v.Kind(), dst)
	}

	d, err := b.desc.Describe(dst)
	if err != nil {
		return reflect.Value{}, err
	}

	if d.Shape == descriptor.ShapeEnum {
		return b.bindEnum(v, d)
	}

	if v.IsNull() {
		return b.bindNull(v, d)
	}

	if v.Kind().IsScalar() {
		if d.Shape == descriptor.ShapePrimitive {
			if out, ok := primitive.Coerce(v, dst, b.opts.Allowed()); ok {
				return out, nil
			}
		}

		if conv, ok := b.conv.Lookup(v.Kind(), dst); ok {
			return b.applyConverter(conv, v, dst)
		}
	}

	switch d.Shape {
	case descriptor.ShapePointer:
		out, err := b.bind(v, d.Elem, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(d.Elem)
		ptr.Elem().Set(out)

		return ptr, nil

	case descriptor.ShapeInterface:
		out := reflect.New(d.Type).Elem()
		out.Set(reflect.ValueOf(v.Native()))

		return out, nil

	case descriptor.ShapePrimitive:
		return reflect.Value{}, notAssignable(v, dst, "")

	case descriptor.ShapeCollection:
		return b.bindCollection(v, d, depth)

	case descriptor.ShapeMap:
		return b.bindMap(v, d, depth)

	case descriptor.ShapeObject:
		if v.Kind() == value.KindSequence {
			return b.bindTuple(v, d, depth)
		}

		return b.bindObject(v, d, depth)

	default:
		return reflect.Value{}, failf(CodeUnsupportedDestinationType, v.Kind(), dst, typeLabel(dst))
	}
}

// bindNull maps a null source onto the destination: typed nil for nullable
// shapes, zero value for aggregates, failure for bare primitives that have
// no way to carry absence.
func (b *Binder) bindNull(v value.Value, d *descriptor.Descriptor) (reflect.Value, error) {
	switch d.Shape {
	case descriptor.ShapePointer, descriptor.ShapeInterface,
		descriptor.ShapeCollection, descriptor.ShapeMap, descriptor.ShapeObject:
		return reflect.Zero(d.Type), nil

	case descriptor.ShapePrimitive:
		return reflect.Value{}, failf(CodeSourceObjectNullOrEmpty, v.Kind(), d.Type, typeLabel(d.Type))

	default:
		return reflect.Value{}, failf(CodeUnsupportedDestinationType, v.Kind(), d.Type, typeLabel(d.Type))
	}
}

func (b *Binder) applyConverter(conv Converter, v value.Value, dst reflect.Type) (reflect.Value, error) {
	out, ok, err := conv.Call(v)
	if err != nil {
		return reflect.Value{}, notAssignable(v, dst, ": "+conv.Name+": "+err.Error())
	}
	if !ok {
		return reflect.Value{}, notAssignable(v, dst, ": "+conv.Name+" rejected the value")
	}

	return out, nil
}

func notAssignable(v value.Value, dst reflect.Type, detail string) *Error {
	return failf(CodeSourceNotAssignable, v.Kind(), dst, v.Kind().String(), typeLabel(dst), detail)
}
