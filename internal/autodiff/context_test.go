package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
)

func TestContext_SaveForBackward(t *testing.T) {
	ctx := autodiff.NewContext[float64](false)
	assert.Empty(t, ctx.SavedValues())

	ctx.SaveForBackward(1.5, 2.5)

	assert.Equal(t, []float64{1.5, 2.5}, ctx.SavedValues())
	assert.False(t, ctx.NoGrad())
}

func TestContext_NoGrad(t *testing.T) {
	ctx := autodiff.NewContext[float64](true)

	ctx.SaveForBackward(1.5, 2.5)

	assert.True(t, ctx.NoGrad())
	assert.Empty(t, ctx.SavedValues(), "no-grad context must not retain values")
}

func TestContext_SaveOverwrites(t *testing.T) {
	ctx := autodiff.NewContext[float64](false)

	ctx.SaveForBackward(1, 2, 3)
	ctx.SaveForBackward(4)

	assert.Equal(t, []float64{4}, ctx.SavedValues())
}

func TestContext_SavedValuesImmutable(t *testing.T) {
	ctx := autodiff.NewContext[float64](false)
	values := []float64{1, 2}
	ctx.SaveForBackward(values...)

	values[0] = 100
	got := ctx.SavedValues()
	got[1] = 200

	assert.Equal(t, []float64{1, 2}, ctx.SavedValues())
}

func TestContext_ArbitraryValues(t *testing.T) {
	ctx := autodiff.NewContext[any](false)

	ctx.SaveForBackward("label", 3, []int{1, 2})

	assert.Equal(t, []any{"label", 3, []int{1, 2}}, ctx.SavedValues())
}
