package bind_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuecast/bind"
	"valuecast/descriptor"
	"valuecast/options"
	"valuecast/primitive"
	"valuecast/value"
)

type Temperature float64

func parseTemperature(s string) (Temperature, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return Temperature(f), nil
}

type Address struct {
	City string
	Zip  string
}

type Order struct {
	ID       int64
	Customer string
	Total    float64
	ShipTo   *Address
	Tags     []string
}

type Point struct {
	X float64
	Y float64
}

func newBinder(t *testing.T, opts options.Options, fns ...any) *bind.Binder {
	t.Helper()

	conv, err := bind.NewConverters(fns...)
	require.NoError(t, err)

	return bind.New(descriptor.NewService(), conv, opts)
}

func TestBindPrimitives(t *testing.T) {
	b := newBinder(t, options.Options{})

	tests := []struct {
		name string
		src  value.Value
		dst  reflect.Type
		want any
	}{
		{"int identity", value.Int(42), reflect.TypeFor[int64](), int64(42)},
		{"int narrows safely", value.Int(200), reflect.TypeFor[uint8](), uint8(200)},
		{"int widens to float", value.Int(7), reflect.TypeFor[float64](), 7.0},
		{"whole float to int", value.Float(5.0), reflect.TypeFor[int](), 5},
		{"string identity", value.String("hi"), reflect.TypeFor[string](), "hi"},
		{"bool identity", value.Bool(true), reflect.TypeFor[bool](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Bind(tt.src, tt.dst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindPrimitiveFailures(t *testing.T) {
	b := newBinder(t, options.Options{})

	tests := []struct {
		name string
		src  value.Value
		dst  reflect.Type
		want error
	}{
		{"overflow", value.Int(300), reflect.TypeFor[int8](), bind.ErrSourceNotAssignable},
		{"fractional to int", value.Float(1.5), reflect.TypeFor[int](), bind.ErrSourceNotAssignable},
		{"text number without category", value.String("12"), reflect.TypeFor[int](), bind.ErrSourceNotAssignable},
		{"null to int", value.Null(), reflect.TypeFor[int](), bind.ErrSourceObjectNullOrEmpty},
		{"sequence to int", value.Sequence(value.Int(1)), reflect.TypeFor[int](), bind.ErrSourceNotAssignable},
		{"chan dest", value.Int(1), reflect.TypeFor[chan int](), bind.ErrUnsupportedDestinationType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Bind(tt.src, tt.dst)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBindWithCategories(t *testing.T) {
	b := newBinder(t, options.Options{
		Categories: primitive.CategoryUnsafeNumber | primitive.CategoryTextNumber,
	})

	got, err := b.Bind(value.Float(1.9), reflect.TypeFor[int]())
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = b.Bind(value.String("12"), reflect.TypeFor[int]())
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestBindNull(t *testing.T) {
	b := newBinder(t, options.Options{})

	tests := []struct {
		name string
		dst  reflect.Type
	}{
		{"pointer", reflect.TypeFor[*int]()},
		{"slice", reflect.TypeFor[[]string]()},
		{"map", reflect.TypeFor[map[string]int]()},
		{"interface", reflect.TypeFor[any]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Bind(value.Null(), tt.dst)
			require.NoError(t, err)
			assert.True(t, got == nil || reflect.ValueOf(got).IsNil())
		})
	}
}

func TestBindPointerAndInterface(t *testing.T) {
	b := newBinder(t, options.Options{})

	got, err := b.Bind(value.Int(9), reflect.TypeFor[*int]())
	require.NoError(t, err)
	require.IsType(t, (*int)(nil), got)
	assert.Equal(t, 9, *got.(*int))

	got, err = b.Bind(value.String("raw"), reflect.TypeFor[any]())
	require.NoError(t, err)
	assert.Equal(t, "raw", got)
}

func TestBindConverter(t *testing.T) {
	b := newBinder(t, options.Options{}, parseTemperature)

	got, err := b.Bind(value.String("36.6"), reflect.TypeFor[Temperature]())
	require.NoError(t, err)
	assert.Equal(t, Temperature(36.6), got)

	_, err = b.Bind(value.String("warm"), reflect.TypeFor[Temperature]())
	assert.ErrorIs(t, err, bind.ErrSourceNotAssignable)
}

func TestBindCollection(t *testing.T) {
	b := newBinder(t, options.Options{})

	t.Run("slice", func(t *testing.T) {
		src := value.Sequence(value.Int(1), value.Int(2), value.Int(3))
		got, err := b.Bind(src, reflect.TypeFor[[]int]())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("array exact length", func(t *testing.T) {
		src := value.Sequence(value.String("a"), value.String("b"))
		got, err := b.Bind(src, reflect.TypeFor[[2]string]())
		require.NoError(t, err)
		assert.Equal(t, [2]string{"a", "b"}, got)
	})

	t.Run("array length mismatch", func(t *testing.T) {
		src := value.Sequence(value.String("a"))
		_, err := b.Bind(src, reflect.TypeFor[[2]string]())
		assert.ErrorIs(t, err, bind.ErrSourceNotAssignable)
	})

	t.Run("null element becomes zero", func(t *testing.T) {
		src := value.Sequence(value.Int(1), value.Null())
		got, err := b.Bind(src, reflect.TypeFor[[]int]())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, got)
	})

	t.Run("nested failure reports index", func(t *testing.T) {
		src := value.Sequence(value.Int(1), value.String("x"))
		_, err := b.Bind(src, reflect.TypeFor[[]int]())
		require.ErrorIs(t, err, bind.ErrSourceNotAssignable)
		assert.Contains(t, err.Error(), "[1]")
	})
}

func TestBindTuple(t *testing.T) {
	b := newBinder(t, options.Options{})

	src := value.Sequence(value.Float(1.5), value.Float(-2.5))
	got, err := b.Bind(src, reflect.TypeFor[Point]())
	require.NoError(t, err)
	assert.Equal(t, Point{X: 1.5, Y: -2.5}, got)

	_, err = b.Bind(value.Sequence(value.Float(1.5)), reflect.TypeFor[Point]())
	assert.ErrorIs(t, err, bind.ErrSourceNotAssignable)
}

func TestBindObject(t *testing.T) {
	b := newBinder(t, options.Options{})

	src := value.Map(value.Pairs(
		"ID", int64(1001),
		"customer", "ACME",
		"total", 99.5,
		"shipTo", map[string]any{"city": "Kyiv", "zip": "01001"},
		"tags", []any{"rush", "fragile"},
	))

	got, err := b.Bind(src, reflect.TypeFor[Order]())
	require.NoError(t, err)

	order, ok := got.(Order)
	require.True(t, ok)
	assert.Equal(t, int64(1001), order.ID)
	assert.Equal(t, "ACME", order.Customer)
	assert.InDelta(t, 99.5, order.Total, 1e-9)
	require.NotNil(t, order.ShipTo)
	assert.Equal(t, Address{City: "Kyiv", Zip: "01001"}, *order.ShipTo)
	assert.Equal(t, []string{"rush", "fragile"}, order.Tags)
}

func TestBindObjectAbsentMembersKeepZero(t *testing.T) {
	b := newBinder(t, options.Options{})

	got, err := b.Bind(value.Map(value.Pairs("customer", "ACME")), reflect.TypeFor[Order]())
	require.NoError(t, err)

	order := got.(Order)
	assert.Zero(t, order.ID)
	assert.Nil(t, order.ShipTo)
}

func TestBindObjectMemberNotFound(t *testing.T) {
	b := newBinder(t, options.Options{})

	_, err := b.Bind(value.Map(value.Pairs("custmer", "ACME")), reflect.TypeFor[Order]())
	require.ErrorIs(t, err, bind.ErrMemberNotFound)

	var be *bind.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "custmer", be.Key())
	assert.Contains(t, be.Suggestions, "customer")
}

func TestBindObjectNestedFailurePath(t *testing.T) {
	b := newBinder(t, options.Options{})

	src := value.Map(value.Pairs(
		"shipTo", map[string]any{"town": "Kyiv"},
	))

	_, err := b.Bind(src, reflect.TypeFor[Order]())
	require.ErrorIs(t, err, bind.ErrMemberNotFound)
	assert.Contains(t, err.Error(), "shipTo:")
}

func TestBindMapDestination(t *testing.T) {
	b := newBinder(t, options.Options{})

	src := value.Map(value.Pairs("a", int64(1), "b", int64(2)))
	got, err := b.Bind(src, reflect.TypeFor[map[string]int]())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)

	_, err = b.Bind(src, reflect.TypeFor[map[int]int]())
	assert.ErrorIs(t, err, bind.ErrUnsupportedDestinationType)
}

func TestBindDepthGuard(t *testing.T) {
	b := bind.New(descriptor.NewService(), nil, options.Options{MaxDepth: 2})

	deep := value.Sequence(value.Sequence(value.Sequence(value.Int(1))))
	_, err := b.Bind(deep, reflect.TypeFor[[][][]int]())
	assert.ErrorIs(t, err, bind.ErrUnavailable)
}

func TestBindTimeAndDuration(t *testing.T) {
	b := newBinder(t, options.Options{
		Categories: primitive.CategoryDatetime | primitive.CategoryDuration,
	})

	got, err := b.Bind(value.String("2026-08-28T12:00:00Z"), reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), got)

	got, err = b.Bind(value.String("90s"), reflect.TypeFor[time.Duration]())
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, got)
}

func TestAs(t *testing.T) {
	b := newBinder(t, options.Options{})

	order, err := bind.As[Order](b, value.Map(value.Pairs("customer", "ACME")))
	require.NoError(t, err)
	assert.Equal(t, "ACME", order.Customer)

	p, err := bind.As[*int](b, value.Null())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestErrorIsMatchesByCode(t *testing.T) {
	b := newBinder(t, options.Options{})

	_, err := b.Bind(value.Null(), reflect.TypeFor[int]())

	assert.True(t, errors.Is(err, bind.ErrSourceObjectNullOrEmpty))
	assert.False(t, errors.Is(err, bind.ErrMemberNotFound))
}
