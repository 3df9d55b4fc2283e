package bind

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"valuecast/internal/common"
	"valuecast/utils"
	"valuecast/value"
)

var (
	ErrIsNotAConverter         = errors.New("provided function is not a recognizable converter")
	ErrConverterIsNotAFunction = errors.New("provided converter is not a function")
	ErrConverterSourceKind     = errors.New("converter input must be bool, int64, float64 or string")
	ErrConverterRedefined      = errors.New("converter for this source kind and destination already registered")
)

// Converter is a parsed custom conversion function from a scalar source
// value to a destination type.
type Converter struct {
	Src          value.Kind
	Dst          reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseConverter inspects the provided function and returns a Converter if it
// has one of the accepted shapes.
//
// Supported interfaces:
//   - func(src S) (dst D)
//   - func(src S) (dst D, bool)
//   - func(src S) (dst D, error)
//   - func(src S) (dst D, bool, error)
//
// S must be exactly bool, int64, float64 or string — the carrier types of
// scalar source values.
func ParseConverter(fn any) (Converter, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Type().Kind() != reflect.Func {
		return Converter{}, ErrConverterIsNotAFunction
	}
	fnType := fnVal.Type()

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return Converter{}, ErrIsNotAConverter
	}

	srcKind, ok := scalarCarrierKind(fnType.In(0))
	if !ok {
		return Converter{}, ErrConverterSourceKind
	}

	// Get the function object from the pointer
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	conv := Converter{
		Src:          srcKind,
		Dst:          fnType.Out(0),
		Name:         name,
		PackageAlias: common.PkgAlias(alias),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Converter{}, ErrIsNotAConverter

	case 1:
		return conv, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Converter{}, ErrIsNotAConverter
		case last.Kind() == reflect.Bool:
			conv.HasBool = true
		case isError(last):
			conv.HasErr = true
		}
		return conv, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Converter{}, ErrIsNotAConverter
		}

		conv.HasBool = true
		conv.HasErr = true
		return conv, nil
	}
}

// Call applies the converter to a scalar value. ok=false means the function
// declined the conversion; err carries its failure.
func (c Converter) Call(v value.Value) (out reflect.Value, ok bool, err error) {
	var arg reflect.Value
	switch c.Src {
	case value.KindBool:
		arg = reflect.ValueOf(v.Bool())
	case value.KindInt:
		arg = reflect.ValueOf(v.Int())
	case value.KindFloat:
		arg = reflect.ValueOf(v.Float())
	case value.KindString:
		arg = reflect.ValueOf(v.Text())
	}

	rets := c.fn.Call([]reflect.Value{arg})
	out, ok = rets[0], true

	if c.HasErr {
		if e := rets[len(rets)-1]; !e.IsNil() {
			return out, false, e.Interface().(error)
		}
	}
	if c.HasBool {
		ok = rets[1].Bool()
	}

	return out, ok, nil
}

func scalarCarrierKind(t reflect.Type) (value.Kind, bool) {
	switch t {
	default:
		return value.KindNull, false
	case reflect.TypeOf(false):
		return value.KindBool, true
	case reflect.TypeOf(int64(0)):
		return value.KindInt, true
	case reflect.TypeOf(float64(0)):
		return value.KindFloat, true
	case reflect.TypeOf(""):
		return value.KindString, true
	}
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}

type converterKey struct {
	src value.Kind
	dst reflect.Type
}

// Converters is a read-only registry of custom scalar converters keyed by
// (source kind, destination type). Build it once at startup, before the
// first Bind call, and pass it by reference into New; it is never mutated
// afterwards, which makes concurrent Bind calls safe.
type Converters struct {
	table map[converterKey]Converter
}

// NewConverters parses and registers the given functions. Registering two
// converters for the same (source kind, destination) pair is an error.
func NewConverters(fns ...any) (*Converters, error) {
	c := &Converters{table: make(map[converterKey]Converter, len(fns))}

	for _, fn := range fns {
		conv, err := ParseConverter(fn)
		if err != nil {
			return nil, fmt.Errorf("register converter %T: %w", fn, err)
		}

		key := converterKey{src: conv.Src, dst: conv.Dst}
		if _, dup := c.table[key]; dup {
			return nil, fmt.Errorf("%w: %s -> %v", ErrConverterRedefined, conv.Src, conv.Dst)
		}
		c.table[key] = conv
	}

	return c, nil
}

// Lookup finds a converter from the given source kind to dst.
func (c *Converters) Lookup(src value.Kind, dst reflect.Type) (Converter, bool) {
	if c == nil {
		return Converter{}, false
	}

	conv, ok := c.table[converterKey{src: src, dst: dst}]
	return conv, ok
}

// All returns the registered converters in no particular order.
func (c *Converters) All() []Converter {
	if c == nil {
		return nil
	}

	out := make([]Converter, 0, len(c.table))
	for _, conv := range c.table {
		out = append(out, conv)
	}
	return out
}
