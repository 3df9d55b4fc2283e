package bind

import (
	"reflect"

	"valuecast/descriptor"
	"valuecast/options"
	"valuecast/value"
)

// Binder is the coercion engine. It is stateless per call: the descriptor
// service and converter registry are read-only after construction, so a
// single Binder is safe for concurrent use.
type Binder struct {
	desc *descriptor.Service
	conv *Converters
	opts options.Options
}

// New builds a binder over the given descriptor service and converter
// registry. Both may be nil; a nil service gets a fresh one with no
// registered enums, a nil registry means no custom converters.
func New(desc *descriptor.Service, conv *Converters, opts options.Options) *Binder {
	if desc == nil {
		desc = descriptor.NewService()
	}

	return &Binder{desc: desc, conv: conv, opts: opts}
}

// Bind converts a source value into an instance of dst, or fails with a
// *Error. Binding is all-or-nothing: the first failure aborts the whole
// call with no partial result.
func (b *Binder) Bind(v value.Value, dst reflect.Type) (any, error) {
	out, err := b.bind(v, dst, 0)
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// As binds a source value into a concrete destination type.
func As[T any](b *Binder, v value.Value) (T, error) {
	var zero T

	out, err := b.Bind(v, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}

	return out.(T), nil
}

// ResolveEnum runs the enum resolver directly. Unlike Bind it insists the
// destination is an enum, failing CodeNoEnumAtDestinationType otherwise.
func (b *Binder) ResolveEnum(v value.Value, dst reflect.Type) (any, error) {
	d, err := b.desc.Describe(dst)
	if err != nil {
		return nil, err
	}

	if d.Shape != descriptor.ShapeEnum {
		return nil, failf(CodeNoEnumAtDestinationType, v.Kind(), dst, typeLabel(dst))
	}

	out, err := b.bindEnum(v, d)
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}
