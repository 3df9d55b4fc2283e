package options

import "valuecast/primitive"

// DefaultMaxDepth bounds recursion against pathological type graphs.
// Depth follows destination type nesting, not input size.
const DefaultMaxDepth = 32

// Options configures a binder. The zero value is usable: value-preserving
// numeric coercion only, default depth bound.
type Options struct {
	// Categories enables scalar conversion categories beyond the always-on
	// value-preserving set (e.g. primitive.CategoryTextNumber).
	Categories primitive.CategoryEnum

	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) Depth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Allowed returns the effective conversion categories.
func (o Options) Allowed() primitive.CategoryEnum {
	return o.Categories | primitive.CategorySafeNumber
}
