package autodiff

import "slices"

// Context stores the values an operation needs during its backward step.
//
// A Context is created once per forward invocation and owned by that
// invocation. When NoGrad is set nothing is retained.
//
// Usage:
//
//	ctx := NewContext[float64](false)
//	ctx.SaveForBackward(a, b)
//	a, b := ctx.SavedValues()[0], ctx.SavedValues()[1]
type Context[T any] struct {
	noGrad bool
	saved  []T
}

// NewContext creates a Context. With noGrad true every save is a no-op.
func NewContext[T any](noGrad bool) *Context[T] {
	return &Context[T]{noGrad: noGrad}
}

// NoGrad reports whether the context discards saved values.
func (c *Context[T]) NoGrad() bool {
	return c.noGrad
}

// SaveForBackward stores values, replacing anything saved before.
// It is a no-op when the context is in no-grad mode.
func (c *Context[T]) SaveForBackward(values ...T) {
	if c.noGrad {
		return
	}
	c.saved = slices.Clone(values)
}

// SavedValues returns what was last saved, or nil if nothing was.
// The returned slice is a copy; the saved values cannot be changed through it.
func (c *Context[T]) SavedValues() []T {
	return slices.Clone(c.saved)
}
