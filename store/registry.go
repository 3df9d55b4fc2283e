package store

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"valuecast/descriptor"
)

// RegisterTypes registers the store's enum types with a descriptor
// service. Call it once per service, before the first bind.
func RegisterTypes(svc *descriptor.Service) error {
	err := svc.RegisterEnum(Status(0), false,
		descriptor.EnumMember{Name: "Pending", Value: uint64(StatusPending)},
		descriptor.EnumMember{Name: "Paid", Value: uint64(StatusPaid)},
		descriptor.EnumMember{Name: "Shipped", Value: uint64(StatusShipped)},
		descriptor.EnumMember{Name: "Cancelled", Value: uint64(StatusCancelled)},
	)
	if err != nil {
		return fmt.Errorf("register Status: %w", err)
	}

	err = svc.RegisterEnum(Channel(0), true,
		descriptor.EnumMember{Name: "Web", Value: uint64(ChannelWeb)},
		descriptor.EnumMember{Name: "Mobile", Value: uint64(ChannelMobile)},
		descriptor.EnumMember{Name: "Phone", Value: uint64(ChannelPhone)},
		descriptor.EnumMember{Name: "Partner", Value: uint64(ChannelPartner)},
	)
	if err != nil {
		return fmt.Errorf("register Channel: %w", err)
	}

	return nil
}

// Converters returns the store's custom conversion functions in a form
// ready to feed into bind.NewConverters.
func Converters() []any {
	return []any{ParseCents, CentsFromFloat}
}

// ParseCents converts a decimal money string like "19.99" into an
// integral cent amount. At most two fraction digits are accepted.
func ParseCents(s string) (Cents, error) {
	whole, frac, found := strings.Cut(strings.TrimSpace(s), ".")

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad money amount %q: %w", s, err)
	}

	if !found {
		return Cents(w * 100), nil
	}
	if len(frac) == 0 || len(frac) > 2 {
		return 0, fmt.Errorf("bad money amount %q: want at most two fraction digits", s)
	}

	f, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("bad money amount %q: %w", s, err)
	}
	if len(frac) == 1 {
		f *= 10
	}

	cents := w*100 + int64(f)
	if w < 0 || strings.HasPrefix(whole, "-") {
		cents = w*100 - int64(f)
	}

	return Cents(cents), nil
}

// CentsFromFloat accepts a float amount of whole currency units, declining
// values that do not land exactly on a cent.
func CentsFromFloat(f float64) (Cents, bool) {
	scaled := f * 100
	cents := int64(scaled)

	return Cents(cents), float64(cents) == scaled
}

// Destinations names the bindable destination types for the command line
// surface.
func Destinations() map[string]reflect.Type {
	return map[string]reflect.Type{
		"order":    reflect.TypeOf(Order{}),
		"customer": reflect.TypeOf(Customer{}),
		"product":  reflect.TypeOf(Product{}),
		"address":  reflect.TypeOf(Address{}),
		"item":     reflect.TypeOf(OrderItem{}),
		"status":   reflect.TypeOf(Status(0)),
		"channels": reflect.TypeOf(Channel(0)),
	}
}
