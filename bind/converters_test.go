package bind_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuecast/bind"
	"valuecast/value"
)

type level int

func levelFromInt(n int64) level { return level(n) }

func levelFromText(s string) (level, error) {
	n, err := strconv.Atoi(s)
	return level(n), err
}

func evenLevel(n int64) (level, bool) {
	return level(n), n%2 == 0
}

func guardedLevel(n int64) (level, bool, error) {
	if n < 0 {
		return 0, false, errors.New("negative level")
	}
	return level(n), n%2 == 0, nil
}

func TestParseConverterShapes(t *testing.T) {
	tests := []struct {
		name    string
		fn      any
		src     value.Kind
		hasBool bool
		hasErr  bool
	}{
		{"plain", levelFromInt, value.KindInt, false, false},
		{"with error", levelFromText, value.KindString, false, true},
		{"with ok", evenLevel, value.KindInt, true, false},
		{"with ok and error", guardedLevel, value.KindInt, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := bind.ParseConverter(tt.fn)
			require.NoError(t, err)

			assert.Equal(t, tt.src, conv.Src)
			assert.Equal(t, tt.hasBool, conv.HasBool)
			assert.Equal(t, tt.hasErr, conv.HasErr)
			assert.Equal(t, "bind_test", conv.PackageAlias)
		})
	}
}

func TestParseConverterRejects(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		want error
	}{
		{"not a function", 42, bind.ErrConverterIsNotAFunction},
		{"nil", nil, bind.ErrConverterIsNotAFunction},
		{"no results", func(int64) {}, bind.ErrIsNotAConverter},
		{"two inputs", func(int64, int64) level { return 0 }, bind.ErrIsNotAConverter},
		{"narrow input", func(int32) level { return 0 }, bind.ErrConverterSourceKind},
		{"bad second result", func(int64) (level, int) { return 0, 0 }, bind.ErrIsNotAConverter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bind.ParseConverter(tt.fn)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConverterCall(t *testing.T) {
	conv, err := bind.ParseConverter(guardedLevel)
	require.NoError(t, err)

	out, ok, err := conv.Call(value.Int(4))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, level(4), out.Interface())

	_, ok, err = conv.Call(value.Int(3))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = conv.Call(value.Int(-1))
	assert.Error(t, err)
}

func TestNewConvertersRejectsDuplicates(t *testing.T) {
	_, err := bind.NewConverters(levelFromInt, evenLevel)
	assert.ErrorIs(t, err, bind.ErrConverterRedefined)
}

func TestConvertersLookup(t *testing.T) {
	reg, err := bind.NewConverters(levelFromInt, levelFromText)
	require.NoError(t, err)

	conv, ok := reg.Lookup(value.KindInt, reflect.TypeFor[level]())
	require.True(t, ok)
	assert.Equal(t, "levelFromInt", conv.Name)

	_, ok = reg.Lookup(value.KindBool, reflect.TypeFor[level]())
	assert.False(t, ok)

	assert.Len(t, reg.All(), 2)
}
