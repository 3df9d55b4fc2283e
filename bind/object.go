package bind

import (
	"reflect"

	"valuecast/descriptor"
	"valuecast/internal/match"
	"valuecast/value"
)

// suggestionLimit caps the near-miss member names attached to a
// CodeMemberNotFound failure.
const suggestionLimit = 3

// bindObject fills a struct from a mapping source. Every source key must
// resolve to a settable member under name normalization; the first key
// that does not aborts the call. Members absent from the source keep
// their zero values.
func (b *Binder) bindObject(v value.Value, d *descriptor.Descriptor, depth int) (reflect.Value, error) {
	if v.Kind() != value.KindMapping {
		return reflect.Value{}, notAssignable(v, d.Type, "")
	}

	out := reflect.New(d.Type).Elem()
	src := v.Mapping()

	for _, key := range src.Keys() {
		member, ok := d.MemberByKey(key)
		if !ok {
			be := failf(CodeMemberNotFound, v.Kind(), d.Type, key, typeLabel(d.Type))
			be.Suggestions = match.Nearest(key, d.MemberNames(), suggestionLimit)

			return reflect.Value{}, be
		}

		item, _ := src.Get(key)

		bound, err := b.bind(item, member.Type, depth+1)
		if err != nil {
			return reflect.Value{}, prefix(err, key)
		}

		out.Field(member.Index).Set(bound)
	}

	return out, nil
}

// bindMap fills a string-keyed map from a mapping source, preserving
// nothing about order — Go maps have none — but binding every entry's
// value against the map's element type.
func (b *Binder) bindMap(v value.Value, d *descriptor.Descriptor, depth int) (reflect.Value, error) {
	if v.Kind() != value.KindMapping {
		return reflect.Value{}, notAssignable(v, d.Type, "")
	}

	if d.Key.Kind() != reflect.String {
		return reflect.Value{}, failf(CodeUnsupportedDestinationType, v.Kind(), d.Type, typeLabel(d.Type))
	}

	src := v.Mapping()
	out := reflect.MakeMapWithSize(d.Type, src.Len())

	for _, key := range src.Keys() {
		item, _ := src.Get(key)

		bound, err := b.bindElement(item, d.Elem, depth+1)
		if err != nil {
			return reflect.Value{}, prefix(err, key)
		}

		out.SetMapIndex(reflect.ValueOf(key).Convert(d.Key), bound)
	}

	return out, nil
}
