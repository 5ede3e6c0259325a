package autodiff_test

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff"
	"golang.org/x/exp/constraints"
)

// fakeVar is a minimal Variable whose local derivatives are fixed numbers.
// It panics if the engine ever accumulates into a non-leaf.
type fakeVar[T constraints.Float] struct {
	id         int64
	name       string
	constant   bool
	parents    []*fakeVar[T]
	locals     []T // local derivative per parent, same order as parents
	derivative T
	calls      int
	chainCalls int
}

func (v *fakeVar[T]) UniqueID() int64 { return v.id }

func (v *fakeVar[T]) IsLeaf() bool { return !v.constant && len(v.parents) == 0 }

func (v *fakeVar[T]) IsConstant() bool { return v.constant }

func (v *fakeVar[T]) Parents() []autodiff.Variable[T] {
	parents := make([]autodiff.Variable[T], len(v.parents))
	for i, p := range v.parents {
		parents[i] = p
	}
	return parents
}

func (v *fakeVar[T]) AccumulateDerivative(d T) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("AccumulateDerivative called on non-leaf %s", v.name))
	}
	v.calls++
	v.derivative += d
}

func (v *fakeVar[T]) ChainRule(dOutput T) []autodiff.Partial[T] {
	v.chainCalls++
	partials := make([]autodiff.Partial[T], len(v.parents))
	for i, p := range v.parents {
		partials[i] = autodiff.Partial[T]{Variable: p, Derivative: dOutput * v.locals[i]}
	}
	return partials
}

func (v *fakeVar[T]) String() string { return v.name }

// fakeGraph hands out ids the way a real arena would.
type fakeGraph[T constraints.Float] struct {
	next int64
}

func (g *fakeGraph[T]) newVar(name string) *fakeVar[T] {
	g.next++
	return &fakeVar[T]{id: g.next, name: name}
}

func (g *fakeGraph[T]) leaf(name string) *fakeVar[T] {
	return g.newVar(name)
}

func (g *fakeGraph[T]) constant(name string) *fakeVar[T] {
	v := g.newVar(name)
	v.constant = true
	return v
}

// op creates a node whose derivative with respect to parents[i] is locals[i].
func (g *fakeGraph[T]) op(name string, parents []*fakeVar[T], locals []T) *fakeVar[T] {
	v := g.newVar(name)
	v.parents = parents
	v.locals = locals
	return v
}

func names[T constraints.Float](order []autodiff.Variable[T]) []string {
	out := make([]string, len(order))
	for i, v := range order {
		out[i] = v.(*fakeVar[T]).name
	}
	return out
}

func indexOf[T constraints.Float](order []autodiff.Variable[T]) map[int64]int {
	idx := make(map[int64]int, len(order))
	for i, v := range order {
		idx[v.UniqueID()] = i
	}
	return idx
}
