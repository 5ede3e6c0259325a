package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/scalar"
	"github.com/stretchr/testify/assert"
)

func TestBackpropagate_PublicAPI(t *testing.T) {
	arena := scalar.NewArena()
	x := arena.Leaf(1.0)
	y := arena.Sigmoid(arena.Mul(x, arena.Constant(2)))

	autodiff.Backpropagate[float64](y, 1.0)

	f := func(v ...float64) float64 { return 1 / (1 + math.Exp(-2*v[0])) }
	assert.InDelta(t, autodiff.CentralDifference(f, 0, 1.0), x.Derivative(), 1e-2)
	assert.Len(t, autodiff.TopologicalSort[float64](y), 3)
}

func TestContext_PublicAPI(t *testing.T) {
	ctx := autodiff.NewContext[float64](false)
	ctx.SaveForBackward(1, 2)
	assert.Equal(t, []float64{1, 2}, ctx.SavedValues())
}
