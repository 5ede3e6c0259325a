package autodiff

import (
	"slices"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// DefaultEpsilon is the step size used by CentralDifference.
const DefaultEpsilon = 1e-6

// CentralDifference approximates the partial derivative of f with respect to
// argument arg at vals, using a step of DefaultEpsilon.
//
// Formula:
//
//	(f(x₀, …, xᵢ + ε/2, …) - f(x₀, …, xᵢ - ε/2, …)) / ε
//
// Only argument arg is perturbed. vals is not modified.
func CentralDifference[T constraints.Float](f func(args ...T) T, arg int, vals ...T) T {
	return CentralDifferenceWithEpsilon(f, arg, T(DefaultEpsilon), vals...)
}

// CentralDifferenceWithEpsilon is CentralDifference with an explicit step size.
//
// Note: float32 callers should pick a larger epsilon (e.g. 1e-3); at 1e-6 the
// difference f(x+ε/2) - f(x-ε/2) is dominated by rounding.
func CentralDifferenceWithEpsilon[T constraints.Float](f func(args ...T) T, arg int, epsilon T, vals ...T) T {
	if arg < 0 || arg >= len(vals) {
		exceptions.Panicf("CentralDifference: arg %d out of range for %d values", arg, len(vals))
	}
	if epsilon <= 0 {
		exceptions.Panicf("CentralDifference: epsilon must be positive, got %v", epsilon)
	}

	plus := slices.Clone(vals)
	minus := slices.Clone(vals)
	plus[arg] += epsilon / 2
	minus[arg] -= epsilon / 2

	return (f(plus...) - f(minus...)) / epsilon
}
