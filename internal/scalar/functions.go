package scalar

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/operators"
)

// Function is a differentiable scalar operation.
//
// Forward computes the result and saves in ctx whatever Backward needs.
// Backward returns one derivative per input, in input order, given the
// derivative of the final output with respect to the result.
type Function interface {
	Name() string
	Arity() int
	Forward(ctx *autodiff.Context[float64], inputs ...float64) float64
	Backward(ctx *autodiff.Context[float64], dOutput float64) []float64
}

// AddOp: output = a + b.
//
// Backward: both inputs receive dOutput unchanged.
type AddOp struct{}

func (AddOp) Name() string { return "Add" }
func (AddOp) Arity() int   { return 2 }

func (AddOp) Forward(_ *autodiff.Context[float64], in ...float64) float64 {
	return operators.Add(in[0], in[1])
}

func (AddOp) Backward(_ *autodiff.Context[float64], d float64) []float64 {
	return []float64{d, d}
}

// MulOp: output = a * b.
//
// Backward:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
type MulOp struct{}

func (MulOp) Name() string { return "Mul" }
func (MulOp) Arity() int   { return 2 }

func (MulOp) Forward(ctx *autodiff.Context[float64], in ...float64) float64 {
	ctx.SaveForBackward(in[0], in[1])
	return operators.Mul(in[0], in[1])
}

func (MulOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	saved := ctx.SavedValues()
	a, b := saved[0], saved[1]
	return []float64{operators.Mul(d, b), operators.Mul(d, a)}
}

// NegOp: output = -a.
type NegOp struct{}

func (NegOp) Name() string { return "Neg" }
func (NegOp) Arity() int   { return 1 }

func (NegOp) Forward(_ *autodiff.Context[float64], in ...float64) float64 {
	return operators.Neg(in[0])
}

func (NegOp) Backward(_ *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.Neg(d)}
}

// InvOp: output = 1 / a.
//
// Backward: d(1/a)/da = -1/a².
type InvOp struct{}

func (InvOp) Name() string { return "Inv" }
func (InvOp) Arity() int   { return 1 }

func (InvOp) Forward(ctx *autodiff.Context[float64], in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.Inv(in[0])
}

func (InvOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.InvBack(ctx.SavedValues()[0], d)}
}

// LogOp: output = ln(a). Input must be positive.
//
// Backward: d(ln a)/da = 1/a.
type LogOp struct{}

func (LogOp) Name() string { return "Log" }
func (LogOp) Arity() int   { return 1 }

func (LogOp) Forward(ctx *autodiff.Context[float64], in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.Log(in[0])
}

func (LogOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.LogBack(ctx.SavedValues()[0], d)}
}

// ExpOp: output = e**a.
//
// Backward reuses the forward output: d(e**a)/da = e**a.
type ExpOp struct{}

func (ExpOp) Name() string { return "Exp" }
func (ExpOp) Arity() int   { return 1 }

func (ExpOp) Forward(ctx *autodiff.Context[float64], in ...float64) float64 {
	out := operators.Exp(in[0])
	ctx.SaveForBackward(out)
	return out
}

func (ExpOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.Mul(d, ctx.SavedValues()[0])}
}

// SigmoidOp: output = σ(a).
//
// Backward reuses the forward output: dσ/da = σ(a) * (1 - σ(a)).
type SigmoidOp struct{}

func (SigmoidOp) Name() string { return "Sigmoid" }
func (SigmoidOp) Arity() int   { return 1 }

func (SigmoidOp) Forward(ctx *autodiff.Context[float64], in ...float64) float64 {
	out := operators.Sigmoid(in[0])
	ctx.SaveForBackward(out)
	return out
}

func (SigmoidOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	s := ctx.SavedValues()[0]
	return []float64{d * s * (1.0 - s)}
}

// ReLUOp: output = max(a, 0).
//
// Backward: dOutput where a > 0, else 0.
type ReLUOp struct{}

func (ReLUOp) Name() string { return "ReLU" }
func (ReLUOp) Arity() int   { return 1 }

func (ReLUOp) Forward(ctx *autodiff.Context[float64], in ...float64) float64 {
	ctx.SaveForBackward(in[0])
	return operators.ReLU(in[0])
}

func (ReLUOp) Backward(ctx *autodiff.Context[float64], d float64) []float64 {
	return []float64{operators.ReLUBack(ctx.SavedValues()[0], d)}
}

// LTOp: output = 1 if a < b, else 0. Piecewise constant, so both derivatives are 0.
type LTOp struct{}

func (LTOp) Name() string { return "LT" }
func (LTOp) Arity() int   { return 2 }

func (LTOp) Forward(_ *autodiff.Context[float64], in ...float64) float64 {
	return operators.LT(in[0], in[1])
}

func (LTOp) Backward(_ *autodiff.Context[float64], _ float64) []float64 {
	return []float64{0, 0}
}

// EQOp: output = 1 if a == b, else 0. Both derivatives are 0.
type EQOp struct{}

func (EQOp) Name() string { return "EQ" }
func (EQOp) Arity() int   { return 2 }

func (EQOp) Forward(_ *autodiff.Context[float64], in ...float64) float64 {
	return operators.EQ(in[0], in[1])
}

func (EQOp) Backward(_ *autodiff.Context[float64], _ float64) []float64 {
	return []float64{0, 0}
}
