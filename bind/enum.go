package bind

import (
	"reflect"
	"strconv"
	"strings"

	"valuecast/descriptor"
	"valuecast/value"
)

// enumSeparators split a flags string into member tokens. Any mix of them
// works; runs of separators collapse.
const enumSeparators = "|,;+ "

func (b *Binder) bindEnum(v value.Value, d *descriptor.Descriptor) (reflect.Value, error) {
	if v.IsNull() {
		return reflect.Value{}, failf(CodeSourceObjectNullOrEmpty, v.Kind(), d.Type, typeLabel(d.Type))
	}

	switch v.Kind() {
	case value.KindInt:
		return b.enumFromIntegral(v.Int(), d)
	case value.KindString:
		return b.enumFromString(v.Text(), d)
	default:
		return reflect.Value{}, notAssignable(v, d.Type, "")
	}
}

// enumFromIntegral accepts an integral source only when it equals a defined
// member's value under the enum's own width and signedness.
func (b *Binder) enumFromIntegral(n int64, d *descriptor.Descriptor) (reflect.Value, error) {
	spec := d.Enum

	for _, m := range spec.Members {
		if spec.Signed {
			if n == signExtend(m.Value, spec.Width) {
				return enumValue(m.Value, d), nil
			}
		} else if n >= 0 && uint64(n) == m.Value {
			return enumValue(m.Value, d), nil
		}
	}

	return reflect.Value{}, failf(CodeNumberNotDefinedInEnum, value.KindInt, d.Type, n, typeLabel(d.Type))
}

func (b *Binder) enumFromString(raw string, d *descriptor.Descriptor) (reflect.Value, error) {
	spec := d.Enum

	s := strings.TrimSpace(raw)
	if s == "" {
		return reflect.Value{}, failf(CodeStringNotDefinedInEnum, value.KindString, d.Type, s, typeLabel(d.Type))
	}

	if len(spec.Members) == 0 {
		return reflect.Value{}, failf(CodeDestinationEnumEmpty, value.KindString, d.Type, typeLabel(d.Type))
	}

	// Splitting applies to flag enums and to any string carrying a
	// separator; a plain enum still combines such tokens with OR.
	if !spec.Flags && !strings.ContainsAny(s, enumSeparators) {
		bits, err := b.enumToken(s, d)
		if err != nil {
			return reflect.Value{}, err
		}

		return enumValue(bits, d), nil
	}

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(enumSeparators, r)
	})
	if len(tokens) == 0 {
		return reflect.Value{}, failf(CodeSourceObjectNullOrEmpty, value.KindString, d.Type, typeLabel(d.Type))
	}

	// Tokens combine as an unsigned OR over member bit patterns.
	var acc uint64
	for _, tok := range tokens {
		bits, err := b.enumToken(tok, d)
		if err != nil {
			return reflect.Value{}, err
		}

		acc |= bits
	}

	return enumValue(acc&spec.Mask(), d), nil
}

// enumToken resolves one token to a raw bit pattern. Member names match
// exactly, case included. A token that starts like a number is taken as an
// integral literal of the underlying type and is not checked against the
// member set.
func (b *Binder) enumToken(tok string, d *descriptor.Descriptor) (uint64, error) {
	spec := d.Enum

	if m, ok := spec.MemberByName(tok); ok {
		return m.Value, nil
	}

	if c := tok[0]; c == '+' || c == '-' || (c >= '0' && c <= '9') {
		if spec.Signed {
			n, err := strconv.ParseInt(tok, 10, spec.Width)
			if err != nil {
				return 0, failf(CodeEnumIntegralNotFound, value.KindString, d.Type, tok, typeLabel(d.Type))
			}

			return uint64(n) & spec.Mask(), nil
		}

		n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, spec.Width)
		if err != nil {
			return 0, failf(CodeEnumIntegralNotFound, value.KindString, d.Type, tok, typeLabel(d.Type))
		}

		return n, nil
	}

	return 0, failf(CodeStringNotDefinedInEnum, value.KindString, d.Type, tok, typeLabel(d.Type))
}

// enumValue materializes raw bits as the destination enum type.
func enumValue(bits uint64, d *descriptor.Descriptor) reflect.Value {
	out := reflect.New(d.Type).Elem()

	if d.Enum.Signed {
		out.SetInt(signExtend(bits, d.Enum.Width))
	} else {
		out.SetUint(bits & d.Enum.Mask())
	}

	return out
}

func signExtend(bits uint64, width int) int64 {
	shift := 64 - width

	return int64(bits<<shift) >> shift
}
