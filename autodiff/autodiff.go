// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over a
// graph of scalar variables.
//
// Any node type can take part in backpropagation by implementing Variable.
// The scalar package provides a ready-made implementation.
//
// Example:
//
//	import (
//	    "github.com/born-ml/minigrad/autodiff"
//	    "github.com/born-ml/minigrad/scalar"
//	)
//
//	func main() {
//	    arena := scalar.NewArena()
//	    x := arena.Leaf(1.0)
//	    y := arena.Sigmoid(arena.Mul(x, arena.Constant(2)))
//
//	    autodiff.Backpropagate[float64](y, 1.0)
//	    fmt.Println(x.Derivative())
//
//	    // Numerical cross-check
//	    f := func(v ...float64) float64 { return 1 / (1 + math.Exp(-2*v[0])) }
//	    fmt.Println(autodiff.CentralDifference(f, 0, 1.0))
//	}
package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"golang.org/x/exp/constraints"
)

// Variable is the capability a graph node implements to take part in backpropagation.
type Variable[T constraints.Float] = autodiff.Variable[T]

// Partial is one parent edge's contribution returned by Variable.ChainRule.
type Partial[T constraints.Float] = autodiff.Partial[T]

// Context stores values an operation needs during its backward step.
type Context[T any] = autodiff.Context[T]

// DefaultEpsilon is the step size used by CentralDifference.
const DefaultEpsilon = autodiff.DefaultEpsilon

// NewContext creates a Context. With noGrad true nothing is retained.
func NewContext[T any](noGrad bool) *Context[T] {
	return autodiff.NewContext[T](noGrad)
}

// Backpropagate accumulates the derivative of output into every reachable leaf.
func Backpropagate[T constraints.Float](output Variable[T], seed T) {
	autodiff.Backpropagate(output, seed)
}

// TopologicalSort returns the non-constant variables reachable from output,
// each before its parents.
func TopologicalSort[T constraints.Float](output Variable[T]) []Variable[T] {
	return autodiff.TopologicalSort(output)
}

// CentralDifference approximates ∂f/∂x_arg at vals with step DefaultEpsilon.
func CentralDifference[T constraints.Float](f func(args ...T) T, arg int, vals ...T) T {
	return autodiff.CentralDifference(f, arg, vals...)
}

// CentralDifferenceWithEpsilon is CentralDifference with an explicit step size.
func CentralDifferenceWithEpsilon[T constraints.Float](f func(args ...T) T, arg int, epsilon T, vals ...T) T {
	return autodiff.CentralDifferenceWithEpsilon(f, arg, epsilon, vals...)
}
