// Package scalar implements autodiff.Variable for float64 scalars.
//
// A Scalar is one of three kinds:
//   - Leaf: a raw input that collects derivatives
//   - Constant: a value excluded from differentiation
//   - Operation: the output of a Function applied to other scalars
//
// Scalars are created by an Arena, which owns id allocation for one graph.
//
// Usage:
//
//	arena := scalar.NewArena()
//	x := arena.Leaf(1.0)
//	y := arena.Sigmoid(arena.Mul(x, arena.Constant(2)))
//	y.Backward()
//	x.Derivative() // 2 * σ(2) * (1 - σ(2))
package scalar

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// Kind is the variant of a Scalar.
type Kind int

const (
	// Leaf is a differentiable input.
	Leaf Kind = iota
	// Constant is excluded from differentiation.
	Constant
	// Operation is the result of applying a Function.
	Operation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Constant:
		return "Constant"
	case Operation:
		return "Operation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Scalar is a node of a scalar computation graph.
type Scalar struct {
	arena      *Arena
	id         int64
	kind       Kind
	value      float64
	derivative float64

	// Set only for Operation.
	fn     Function
	ctx    *autodiff.Context[float64]
	inputs []*Scalar
}

// Compile-time check.
var _ autodiff.Variable[float64] = (*Scalar)(nil)

// UniqueID returns the id assigned by the arena.
func (s *Scalar) UniqueID() int64 {
	return s.id
}

// IsLeaf reports whether s is a differentiable input.
func (s *Scalar) IsLeaf() bool {
	return s.kind == Leaf
}

// IsConstant reports whether s is excluded from differentiation.
func (s *Scalar) IsConstant() bool {
	return s.kind == Constant
}

// Kind returns the variant of s.
func (s *Scalar) Kind() Kind {
	return s.kind
}

// Value returns the forward value.
func (s *Scalar) Value() float64 {
	return s.value
}

// Derivative returns the derivative accumulated into a leaf so far.
// It is always 0 for constants and operations.
func (s *Scalar) Derivative() float64 {
	return s.derivative
}

// ZeroGrad resets the accumulated derivative.
func (s *Scalar) ZeroGrad() {
	s.derivative = 0
}

// Function returns the function that produced s, or nil for leaves and constants.
func (s *Scalar) Function() Function {
	return s.fn
}

// Parents returns the inputs of an operation, constants included.
func (s *Scalar) Parents() []autodiff.Variable[float64] {
	parents := make([]autodiff.Variable[float64], len(s.inputs))
	for i, in := range s.inputs {
		parents[i] = in
	}
	return parents
}

// AccumulateDerivative adds d into the leaf's derivative.
// Calling it on a constant or an operation is a precondition violation.
func (s *Scalar) AccumulateDerivative(d float64) {
	if s.kind != Leaf {
		exceptions.Panicf("Scalar.AccumulateDerivative: %s is not a leaf", s)
	}
	s.derivative += d
}

// ChainRule pairs every input with the function's derivative for it.
// Leaves and constants have no inputs and return nil.
func (s *Scalar) ChainRule(dOutput float64) []autodiff.Partial[float64] {
	if s.kind != Operation {
		return nil
	}
	grads := s.fn.Backward(s.ctx, dOutput)
	if len(grads) != len(s.inputs) {
		exceptions.Panicf("%s.Backward returned %d derivatives for %d inputs", s.fn.Name(), len(grads), len(s.inputs))
	}
	partials := make([]autodiff.Partial[float64], len(s.inputs))
	for i, in := range s.inputs {
		partials[i] = autodiff.Partial[float64]{Variable: in, Derivative: grads[i]}
	}
	return partials
}

// Backward backpropagates from s with seed 1.
func (s *Scalar) Backward() {
	s.BackwardWith(1.0)
}

// BackwardWith backpropagates from s with the given seed derivative.
func (s *Scalar) BackwardWith(seed float64) {
	autodiff.Backpropagate[float64](s, seed)
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	if s.kind == Operation {
		return fmt.Sprintf("Scalar#%d(%s=%g)", s.id, s.fn.Name(), s.value)
	}
	return fmt.Sprintf("Scalar#%d(%s=%g)", s.id, s.kind, s.value)
}
