package descriptor_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuecast/descriptor"
)

type color uint8

type order struct {
	ID       string
	Customer string
	Total    float64
	internal int
}

func TestDescribeShapes(t *testing.T) {
	svc := descriptor.NewService()

	tests := []struct {
		name  string
		typ   reflect.Type
		shape descriptor.Shape
	}{
		{"string", reflect.TypeOf(""), descriptor.ShapePrimitive},
		{"named int", reflect.TypeOf(color(0)), descriptor.ShapePrimitive},
		{"time", reflect.TypeOf(time.Time{}), descriptor.ShapePrimitive},
		{"pointer", reflect.TypeOf((*order)(nil)), descriptor.ShapePointer},
		{"slice", reflect.TypeOf([]int{}), descriptor.ShapeCollection},
		{"array", reflect.TypeOf([3]int{}), descriptor.ShapeCollection},
		{"map", reflect.TypeOf(map[string]int{}), descriptor.ShapeMap},
		{"struct", reflect.TypeOf(order{}), descriptor.ShapeObject},
		{"any", reflect.TypeOf((*any)(nil)).Elem(), descriptor.ShapeInterface},
		{"chan", reflect.TypeOf(make(chan int)), descriptor.ShapeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := svc.Describe(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, d.Shape)
		})
	}
}

func TestDescribeArrayLen(t *testing.T) {
	svc := descriptor.NewService()

	d, err := svc.Describe(reflect.TypeOf([3]string{}))
	require.NoError(t, err)
	assert.Equal(t, 3, d.ArrayLen)

	d, err = svc.Describe(reflect.TypeOf([]string{}))
	require.NoError(t, err)
	assert.Equal(t, -1, d.ArrayLen)
}

func TestDescribeObjectMembers(t *testing.T) {
	svc := descriptor.NewService()

	d, err := svc.Describe(reflect.TypeOf(order{}))
	require.NoError(t, err)

	// unexported members are skipped; names normalized one-directionally
	assert.Equal(t, []string{"ID", "customer", "total"}, d.MemberNames())

	m, ok := d.MemberByKey("customer")
	require.True(t, ok)
	assert.Equal(t, "Customer", m.Name)
	assert.Equal(t, reflect.TypeOf(""), m.Type)

	_, ok = d.MemberByKey("Customer") // matching is case-sensitive
	assert.False(t, ok)
}

func TestDescribeCaches(t *testing.T) {
	svc := descriptor.NewService()

	d1, err := svc.Describe(reflect.TypeOf(order{}))
	require.NoError(t, err)
	d2, err := svc.Describe(reflect.TypeOf(order{}))
	require.NoError(t, err)

	assert.Same(t, d1, d2)
}

func TestRegisterEnum(t *testing.T) {
	svc := descriptor.NewService()

	err := svc.RegisterEnum(color(0), true,
		descriptor.EnumMember{Name: "Red", Value: 1},
		descriptor.EnumMember{Name: "Green", Value: 2},
		descriptor.EnumMember{Name: "Blue", Value: 4},
	)
	require.NoError(t, err)

	d, err := svc.Describe(reflect.TypeOf(color(0)))
	require.NoError(t, err)
	require.Equal(t, descriptor.ShapeEnum, d.Shape)
	require.NotNil(t, d.Enum)

	assert.Equal(t, 8, d.Enum.Width)
	assert.False(t, d.Enum.Signed)
	assert.True(t, d.Enum.Flags)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, d.Enum.Names())

	m, ok := d.Enum.MemberByName("Green")
	require.True(t, ok)
	assert.Equal(t, uint64(2), m.Value)

	_, ok = d.Enum.MemberByValue(8)
	assert.False(t, ok)
}

func TestRegisterEnumErrors(t *testing.T) {
	svc := descriptor.NewService()

	// not a named integer type
	err := svc.RegisterEnum("plain string", false)
	assert.ErrorIs(t, err, descriptor.ErrEnumSampleInvalid)

	// value does not fit uint8
	err = svc.RegisterEnum(color(0), false, descriptor.EnumMember{Name: "Huge", Value: 300})
	assert.ErrorIs(t, err, descriptor.ErrEnumValueTooWide)

	// blank member name
	err = svc.RegisterEnum(color(0), false, descriptor.EnumMember{Name: "", Value: 1})
	assert.ErrorIs(t, err, descriptor.ErrEnumMemberBlank)

	// double registration
	require.NoError(t, svc.RegisterEnum(color(0), false, descriptor.EnumMember{Name: "Red", Value: 1}))
	err = svc.RegisterEnum(color(0), false, descriptor.EnumMember{Name: "Red", Value: 1})
	assert.ErrorIs(t, err, descriptor.ErrEnumRedefined)
}

func TestEnumSpecMask(t *testing.T) {
	spec := descriptor.EnumSpec{Width: 8}
	assert.Equal(t, uint64(0xff), spec.Mask())

	spec = descriptor.EnumSpec{Width: 64}
	assert.Equal(t, ^uint64(0), spec.Mask())
}
