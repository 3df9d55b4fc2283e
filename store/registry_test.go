package store_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuecast/bind"
	"valuecast/descriptor"
	"valuecast/options"
	"valuecast/primitive"
	"valuecast/store"
	"valuecast/value"
)

func storeBinder(t *testing.T) *bind.Binder {
	t.Helper()

	svc := descriptor.NewService()
	require.NoError(t, store.RegisterTypes(svc))

	conv, err := bind.NewConverters(store.Converters()...)
	require.NoError(t, err)

	return bind.New(svc, conv, options.Options{
		Categories: primitive.CategoryDatetime | primitive.CategoryDuration,
	})
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		in   string
		want store.Cents
	}{
		{"19.99", 1999},
		{"5", 500},
		{"0.5", 50},
		{"-5.25", -525},
		{"-0.25", -25},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := store.ParseCents(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "1.999", "1.", "ten"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := store.ParseCents(bad)
			assert.Error(t, err)
		})
	}
}

func TestCentsFromFloat(t *testing.T) {
	got, ok := store.CentsFromFloat(19.0)
	assert.True(t, ok)
	assert.Equal(t, store.Cents(1900), got)

	_, ok = store.CentsFromFloat(0.333)
	assert.False(t, ok)
}

func TestBindOrderDocument(t *testing.T) {
	b := storeBinder(t)

	src := value.Map(value.Pairs(
		"ID", int64(7001),
		"status", "Paid",
		"channels", "Web|Phone",
		"total", "249.99",
		"lead", "48h",
		"items", []any{
			map[string]any{"productID": int64(11), "name": "Mug", "quantity": int64(2), "unitPrice": "12.50"},
		},
		"shipTo", map[string]any{"city": "Lviv", "country": "UA"},
		"window", []any{"2026-09-01T00:00:00Z", "2026-09-03T00:00:00Z"},
		"orderedAt", "2026-08-28T10:30:00Z",
	))

	got, err := b.Bind(src, reflect.TypeOf(store.Order{}))
	require.NoError(t, err)

	order := got.(store.Order)
	assert.Equal(t, int64(7001), order.ID)
	assert.Equal(t, store.StatusPaid, order.Status)
	assert.Equal(t, store.ChannelWeb|store.ChannelPhone, order.Channels)
	assert.Equal(t, store.Cents(24999), order.Total)
	assert.Equal(t, 48*time.Hour, order.Lead)
	require.Len(t, order.Items, 1)
	assert.Equal(t, store.Cents(1250), order.Items[0].UnitPrice)
	require.NotNil(t, order.ShipTo)
	assert.Equal(t, "Lviv", order.ShipTo.City)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), order.Window[0])
	assert.Nil(t, order.Customer)
}

func TestDestinations(t *testing.T) {
	dests := store.Destinations()

	assert.Contains(t, dests, "order")
	assert.Equal(t, reflect.TypeOf(store.Status(0)), dests["status"])
}
