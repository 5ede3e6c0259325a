package scalar

import (
	"slices"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// Arena allocates scalars for one computation graph.
//
// Ids are assigned in creation order starting at 1 and are only unique within
// the arena, so scalars from different arenas cannot be mixed.
//
// An Arena is not safe for concurrent use. Independent graphs built on
// separate goroutines should each use their own Arena.
type Arena struct {
	lastID int64
	noGrad bool
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// SetNoGrad toggles no-grad mode. While enabled, every Apply produces a
// constant and no backward state is saved.
func (a *Arena) SetNoGrad(noGrad bool) {
	a.noGrad = noGrad
}

// NoGrad reports whether no-grad mode is enabled.
func (a *Arena) NoGrad() bool {
	return a.noGrad
}

// Len returns the number of scalars allocated so far.
func (a *Arena) Len() int {
	return int(a.lastID)
}

func (a *Arena) newScalar(kind Kind, value float64) *Scalar {
	a.lastID++
	return &Scalar{arena: a, id: a.lastID, kind: kind, value: value}
}

// Leaf creates a differentiable input.
func (a *Arena) Leaf(value float64) *Scalar {
	return a.newScalar(Leaf, value)
}

// Leaves creates one leaf per value.
func (a *Arena) Leaves(values ...float64) []*Scalar {
	leaves := make([]*Scalar, len(values))
	for i, v := range values {
		leaves[i] = a.Leaf(v)
	}
	return leaves
}

// Constant creates a value excluded from differentiation.
func (a *Arena) Constant(value float64) *Scalar {
	return a.newScalar(Constant, value)
}

// Apply runs fn forward on inputs and returns the result.
//
// The result is a Constant, with nothing saved for backward, when the arena is
// in no-grad mode or when every input is a constant.
func (a *Arena) Apply(fn Function, inputs ...*Scalar) *Scalar {
	if len(inputs) != fn.Arity() {
		exceptions.Panicf("%s takes %d inputs, got %d", fn.Name(), fn.Arity(), len(inputs))
	}

	values := make([]float64, len(inputs))
	folded := true
	for i, in := range inputs {
		if in.arena != a {
			exceptions.Panicf("%s: input %s belongs to a different arena", fn.Name(), in)
		}
		values[i] = in.value
		folded = folded && in.IsConstant()
	}
	noGrad := a.noGrad || folded

	ctx := autodiff.NewContext[float64](noGrad)
	value := fn.Forward(ctx, values...)
	if noGrad {
		return a.newScalar(Constant, value)
	}

	out := a.newScalar(Operation, value)
	out.fn = fn
	out.ctx = ctx
	out.inputs = slices.Clone(inputs)
	return out
}

// Add returns x + y.
func (a *Arena) Add(x, y *Scalar) *Scalar {
	return a.Apply(AddOp{}, x, y)
}

// Sub returns x - y.
func (a *Arena) Sub(x, y *Scalar) *Scalar {
	return a.Add(x, a.Neg(y))
}

// Mul returns x * y.
func (a *Arena) Mul(x, y *Scalar) *Scalar {
	return a.Apply(MulOp{}, x, y)
}

// Div returns x / y.
func (a *Arena) Div(x, y *Scalar) *Scalar {
	return a.Mul(x, a.Inv(y))
}

// Neg returns -x.
func (a *Arena) Neg(x *Scalar) *Scalar {
	return a.Apply(NegOp{}, x)
}

// Inv returns 1 / x.
func (a *Arena) Inv(x *Scalar) *Scalar {
	return a.Apply(InvOp{}, x)
}

// Log returns ln(x).
func (a *Arena) Log(x *Scalar) *Scalar {
	return a.Apply(LogOp{}, x)
}

// Exp returns e**x.
func (a *Arena) Exp(x *Scalar) *Scalar {
	return a.Apply(ExpOp{}, x)
}

// Sigmoid returns σ(x).
func (a *Arena) Sigmoid(x *Scalar) *Scalar {
	return a.Apply(SigmoidOp{}, x)
}

// ReLU returns max(x, 0).
func (a *Arena) ReLU(x *Scalar) *Scalar {
	return a.Apply(ReLUOp{}, x)
}

// LT returns 1 if x < y, else 0.
func (a *Arena) LT(x, y *Scalar) *Scalar {
	return a.Apply(LTOp{}, x, y)
}

// EQ returns 1 if x == y, else 0.
func (a *Arena) EQ(x, y *Scalar) *Scalar {
	return a.Apply(EQOp{}, x, y)
}
