package primitive

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"valuecast/value"
)

// FromValueKind maps a source scalar kind to the primitive kind carrying it.
// Source integers are always int64, floats float64.
func FromValueKind(k value.Kind) KindEnum {
	switch k {
	default:
		return 0
	case value.KindBool:
		return KindBool
	case value.KindInt:
		return KindInt64
	case value.KindFloat:
		return KindFloat64
	case value.KindString:
		return KindString
	}
}

// Coerce converts a scalar source value to an instance of dst under the
// allowed conversion categories. Same-kind identity is always permitted.
// ok=false when the pair is not permitted, the text form does not parse, or
// the conversion would not preserve the value and CategoryUnsafeNumber is
// not allowed.
func Coerce(v value.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, bool) {
	dstKind := FromReflectType(dst)
	srcKind := FromValueKind(v.Kind())
	if dstKind == 0 || srcKind == 0 {
		return reflect.Value{}, false
	}

	out := reflect.New(dst).Elem()

	if srcKind == dstKind {
		setIdentity(out, v)
		return out, true
	}

	cats := categoriesFor(allowed, ConversionPair{srcKind, dstKind})
	if cats == 0 {
		return reflect.Value{}, false
	}
	lossless := cats&CategoryUnsafeNumber == 0

	switch {
	case dstKind.IsNumber() && srcKind == KindInt64:
		return out, setIntNumber(out, v.Int(), dstKind, lossless)

	case dstKind.IsNumber() && srcKind == KindFloat64:
		return out, setFloatNumber(out, v.Float(), dstKind, lossless)

	case dstKind.IsNumber() && srcKind == KindString:
		return out, setTextNumber(out, v.Text(), dstKind)

	case dstKind.IsInteger() && srcKind == KindBool:
		var u uint64
		if v.Bool() {
			u = 1
		}
		if dstKind.IsSigned() {
			out.SetInt(int64(u))
		} else {
			out.SetUint(u)
		}
		return out, true

	case dstKind == KindString:
		return out, setText(out, v, srcKind)

	case dstKind == KindBool:
		return out, setBool(out, v, srcKind)

	case dstKind == KindTime:
		return out, setTime(out, v, srcKind)

	case dstKind == KindDuration:
		return out, setDuration(out, v, srcKind)
	}

	return reflect.Value{}, false
}

func setIdentity(out reflect.Value, v value.Value) {
	switch v.Kind() {
	case value.KindBool:
		out.SetBool(v.Bool())
	case value.KindInt:
		out.SetInt(v.Int())
	case value.KindFloat:
		out.SetFloat(v.Float())
	case value.KindString:
		out.SetString(v.Text())
	}
}

func setIntNumber(out reflect.Value, i int64, dstKind KindEnum, lossless bool) bool {
	switch {
	case dstKind.IsSigned():
		if lossless && out.OverflowInt(i) {
			return false
		}
		out.SetInt(i) // reflect truncates to the destination width

	case dstKind.IsUnsigned():
		u := uint64(i)
		if lossless && (i < 0 || out.OverflowUint(u)) {
			return false
		}
		out.SetUint(u)

	default: // float destination
		f := float64(i)
		if lossless && int64(f) != i {
			return false
		}
		if dstKind == KindFloat32 && lossless && out.OverflowFloat(f) {
			return false
		}
		out.SetFloat(f)
	}

	return true
}

func setFloatNumber(out reflect.Value, f float64, dstKind KindEnum, lossless bool) bool {
	switch {
	case dstKind.IsSigned():
		if lossless && (f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64) {
			return false
		}
		i := int64(f)
		if lossless && out.OverflowInt(i) {
			return false
		}
		out.SetInt(i)

	case dstKind.IsUnsigned():
		if lossless && (f != math.Trunc(f) || f < 0 || f >= math.MaxUint64) {
			return false
		}
		u := uint64(f)
		if lossless && out.OverflowUint(u) {
			return false
		}
		out.SetUint(u)

	default:
		if dstKind == KindFloat32 && lossless && float64(float32(f)) != f {
			return false
		}
		out.SetFloat(f)
	}

	return true
}

func setTextNumber(out reflect.Value, s string, dstKind KindEnum) bool {
	switch {
	case dstKind.IsSigned():
		i, err := strconv.ParseInt(s, 10, dstKind.Bits())
		if err != nil {
			return false
		}
		out.SetInt(i)

	case dstKind.IsUnsigned():
		u, err := strconv.ParseUint(s, 10, dstKind.Bits())
		if err != nil {
			return false
		}
		out.SetUint(u)

	default:
		f, err := strconv.ParseFloat(s, dstKind.Bits())
		if err != nil {
			return false
		}
		out.SetFloat(f)
	}

	return true
}

func setText(out reflect.Value, v value.Value, srcKind KindEnum) bool {
	switch srcKind {
	default:
		return false
	case KindInt64:
		out.SetString(strconv.FormatInt(v.Int(), 10))
	case KindFloat64:
		out.SetString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case KindBool:
		out.SetString(strconv.FormatBool(v.Bool()))
	}

	return true
}

func setBool(out reflect.Value, v value.Value, srcKind KindEnum) bool {
	switch srcKind {
	default:
		return false

	case KindInt64:
		// strictly 0 or 1; anything else is not a boolean
		switch v.Int() {
		default:
			return false
		case 0:
			out.SetBool(false)
		case 1:
			out.SetBool(true)
		}

	case KindString:
		switch strings.ToLower(strings.TrimSpace(v.Text())) {
		default:
			return false
		case "true", "yes", "on", "1":
			out.SetBool(true)
		case "false", "no", "off", "0":
			out.SetBool(false)
		}
	}

	return true
}

func setTime(out reflect.Value, v value.Value, srcKind KindEnum) bool {
	switch srcKind {
	default:
		return false

	case KindString:
		t, err := time.Parse(time.RFC3339Nano, v.Text())
		if err != nil {
			return false
		}
		out.Set(reflect.ValueOf(t))

	case KindInt64:
		out.Set(reflect.ValueOf(time.Unix(v.Int(), 0).UTC()))
	}

	return true
}

func setDuration(out reflect.Value, v value.Value, srcKind KindEnum) bool {
	switch srcKind {
	default:
		return false

	case KindString:
		d, err := time.ParseDuration(v.Text())
		if err != nil {
			return false
		}
		out.SetInt(int64(d))

	case KindInt64:
		out.SetInt(v.Int())

	case KindFloat64:
		out.SetInt(int64(v.Float() * float64(time.Second)))
	}

	return true
}
