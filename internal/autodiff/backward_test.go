package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackpropagate_Additivity: a leaf feeding two paths receives d1 + d2.
func TestBackpropagate_Additivity(t *testing.T) {
	g := &fakeGraph[float64]{}
	l := g.leaf("l")
	p1 := g.op("p1", []*fakeVar[float64]{l}, []float64{3})
	p2 := g.op("p2", []*fakeVar[float64]{l}, []float64{5})
	y := g.op("y", []*fakeVar[float64]{p1, p2}, []float64{1, 1})

	autodiff.Backpropagate[float64](y, 1.0)

	assert.InDelta(t, 8.0, l.derivative, 1e-12)
	assert.Equal(t, 1, l.calls, "leaf must be deposited once per call")
}

func TestBackpropagate_ChainRuleProduct(t *testing.T) {
	g := &fakeGraph[float64]{}
	x := g.leaf("x")
	m := g.op("m", []*fakeVar[float64]{x}, []float64{2})
	y := g.op("y", []*fakeVar[float64]{m}, []float64{0.25})

	autodiff.Backpropagate[float64](y, 1.0)

	assert.InDelta(t, 0.5, x.derivative, 1e-12)
}

func TestBackpropagate_Seed(t *testing.T) {
	g := &fakeGraph[float64]{}
	x := g.leaf("x")
	y := g.op("y", []*fakeVar[float64]{x}, []float64{4})

	autodiff.Backpropagate[float64](y, 2.5)

	assert.InDelta(t, 10.0, x.derivative, 1e-12)
}

func TestBackpropagate_MultipleLeaves(t *testing.T) {
	g := &fakeGraph[float64]{}
	a, b := g.leaf("a"), g.leaf("b")
	// y = a*b at a=2, b=7
	y := g.op("y", []*fakeVar[float64]{a, b}, []float64{7, 2})

	autodiff.Backpropagate[float64](y, 1.0)

	assert.InDelta(t, 7.0, a.derivative, 1e-12)
	assert.InDelta(t, 2.0, b.derivative, 1e-12)
}

func TestBackpropagate_RepeatedParent(t *testing.T) {
	// y = x * x at x = 3: two edges of 3 each.
	g := &fakeGraph[float64]{}
	x := g.leaf("x")
	y := g.op("y", []*fakeVar[float64]{x, x}, []float64{3, 3})

	autodiff.Backpropagate[float64](y, 1.0)

	assert.InDelta(t, 6.0, x.derivative, 1e-12)
	assert.Equal(t, 1, x.calls)
}

func TestBackpropagate_ConstantExclusion(t *testing.T) {
	g := &fakeGraph[float64]{}
	x := g.leaf("x")
	c := g.constant("c")
	m := g.op("m", []*fakeVar[float64]{x, c}, []float64{2, 9})
	y := g.op("y", []*fakeVar[float64]{m, c}, []float64{1, 9})

	autodiff.Backpropagate[float64](y, 1.0)

	assert.InDelta(t, 2.0, x.derivative, 1e-12)
	assert.Zero(t, c.calls, "constant must never receive a derivative")
	assert.Zero(t, c.derivative)
}

func TestBackpropagate_LeafOnlyAccumulation(t *testing.T) {
	g := &fakeGraph[float64]{}
	a := g.leaf("a")
	b := g.op("b", []*fakeVar[float64]{a}, []float64{3})
	c := g.op("c", []*fakeVar[float64]{a}, []float64{5})
	d := g.op("d", []*fakeVar[float64]{b, c}, []float64{1, 1})

	require.NotPanics(t, func() { autodiff.Backpropagate[float64](d, 1.0) })

	for _, v := range []*fakeVar[float64]{b, c, d} {
		assert.Zero(t, v.calls, "non-leaf %s received AccumulateDerivative", v.name)
		assert.Equal(t, 1, v.chainCalls, "non-leaf %s must apply its chain rule exactly once", v.name)
	}
	assert.Equal(t, 1, a.calls)
	assert.Zero(t, a.chainCalls)
}

func TestBackpropagate_AccumulatesAcrossCalls(t *testing.T) {
	g := &fakeGraph[float64]{}
	x := g.leaf("x")
	y := g.op("y", []*fakeVar[float64]{x}, []float64{3})

	autodiff.Backpropagate[float64](y, 1.0)
	autodiff.Backpropagate[float64](y, 1.0)

	assert.InDelta(t, 6.0, x.derivative, 1e-12)
	assert.Equal(t, 2, x.calls)
}

func TestBackpropagate_LeafOutput(t *testing.T) {
	g := &fakeGraph[float64]{}
	x := g.leaf("x")

	autodiff.Backpropagate[float64](x, 1.5)

	assert.InDelta(t, 1.5, x.derivative, 1e-12)
}

func TestBackpropagate_ConstantOutput(t *testing.T) {
	g := &fakeGraph[float64]{}
	c := g.constant("c")

	autodiff.Backpropagate[float64](c, 1.0)

	assert.Zero(t, c.calls)
}

func TestBackpropagate_Float32(t *testing.T) {
	g := &fakeGraph[float32]{}
	a := g.leaf("a")
	b := g.op("b", []*fakeVar[float32]{a}, []float32{3})
	c := g.op("c", []*fakeVar[float32]{a}, []float32{5})
	d := g.op("d", []*fakeVar[float32]{b, c}, []float32{1, 1})

	autodiff.Backpropagate[float32](d, 1.0)

	assert.InDelta(t, float32(8.0), a.derivative, 1e-6)
}

// brokenVar drops its partials, so its parent is ordered but never reached.
type brokenVar struct {
	*fakeVar[float64]
}

func (v brokenVar) ChainRule(float64) []autodiff.Partial[float64] { return nil }

func TestBackpropagate_MissingDerivativePanics(t *testing.T) {
	g := &fakeGraph[float64]{}
	x := g.leaf("x")
	y := brokenVar{g.op("y", []*fakeVar[float64]{x}, []float64{1})}

	require.Panics(t, func() { autodiff.Backpropagate[float64](y, 1.0) })
	assert.Zero(t, x.calls)
}
