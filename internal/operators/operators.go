// Package operators provides the elementary scalar functions and their
// derivatives used by differentiable scalar operations.
//
// Every function here is pure. The *Back functions take the forward input and
// the incoming derivative and return the derivative with respect to the input.
package operators

import "math"

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = 1e-2

// Mul returns a * b.
func Mul(a, b float64) float64 {
	return a * b
}

// ID returns a unchanged.
func ID(a float64) float64 {
	return a
}

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Neg returns -a.
func Neg(a float64) float64 {
	return -a
}

// LT returns 1 if a < b, else 0.
func LT(a, b float64) float64 {
	if a < b {
		return 1.0
	}
	return 0.0
}

// EQ returns 1 if a == b, else 0.
func EQ(a, b float64) float64 {
	if a == b {
		return 1.0
	}
	return 0.0
}

// Max returns the larger of a and b.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// IsClose reports whether |a - b| < CloseTolerance.
func IsClose(a, b float64) bool {
	return math.Abs(a-b) < CloseTolerance
}

// Sigmoid computes σ(a) = 1 / (1 + exp(-a)).
//
// For negative a the equivalent exp(a) / (1 + exp(a)) is used so that
// exp never overflows.
func Sigmoid(a float64) float64 {
	if a >= 0 {
		return 1.0 / (1.0 + math.Exp(-a))
	}
	e := math.Exp(a)
	return e / (1.0 + e)
}

// ReLU returns max(a, 0).
func ReLU(a float64) float64 {
	if a <= 0 {
		return 0.0
	}
	return a
}

// Log returns the natural logarithm of a.
func Log(a float64) float64 {
	return math.Log(a)
}

// Exp returns e**a.
func Exp(a float64) float64 {
	return math.Exp(a)
}

// Inv returns 1 / a.
func Inv(a float64) float64 {
	return 1.0 / a
}

// LogBack returns d * (1/a), the derivative of log at a times d.
func LogBack(a, d float64) float64 {
	return d / a
}

// InvBack returns d * (-1/a²), the derivative of 1/a at a times d.
func InvBack(a, d float64) float64 {
	return (-1.0 / (a * a)) * d
}

// ReLUBack returns d where a > 0, else 0.
func ReLUBack(a, d float64) float64 {
	if a > 0 {
		return d
	}
	return 0.0
}

// SigmoidBack returns d * σ(a) * (1 - σ(a)).
func SigmoidBack(a, d float64) float64 {
	s := Sigmoid(a)
	return d * s * (1.0 - s)
}

// ExpBack returns d * exp(a).
func ExpBack(a, d float64) float64 {
	return d * math.Exp(a)
}
