package gradcheck

import (
	"github.com/born-ml/minigrad/internal/scalar"
)

// Catalog returns the built-in expressions. Points stay away from the kinks
// of ReLU and the comparisons, where the central difference is meaningless.
func Catalog() []Case {
	return []Case{
		{
			Name:       "sigmoid-of-product",
			Expression: "sigmoid(x * 2)",
			Arity:      1,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Sigmoid(a.Mul(x[0], a.Constant(2)))
			},
			Points: [][]float64{{1.0}, {-0.5}, {3}},
		},
		{
			Name:       "diamond",
			Expression: "(x * 3) + (x * 5)",
			Arity:      1,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Add(a.Mul(x[0], a.Constant(3)), a.Mul(x[0], a.Constant(5)))
			},
			Points: [][]float64{{1.5}, {-2}},
		},
		{
			Name:       "product",
			Expression: "x * y",
			Arity:      2,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Mul(x[0], x[1])
			},
			Points: [][]float64{{2, 7}, {-1.5, 0.25}},
		},
		{
			Name:       "quotient",
			Expression: "(x - y) / y",
			Arity:      2,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Div(a.Sub(x[0], x[1]), x[1])
			},
			Points: [][]float64{{2, 3}, {-1, 0.5}},
		},
		{
			Name:       "log-exp",
			Expression: "log(x * y + exp(y)) * sigmoid(x)",
			Arity:      2,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				inner := a.Add(a.Mul(x[0], x[1]), a.Exp(x[1]))
				return a.Mul(a.Log(inner), a.Sigmoid(x[0]))
			},
			Points: [][]float64{{0.5, 1.5}, {2, 0.1}},
		},
		{
			Name:       "relu",
			Expression: "relu(x * y) + relu(-x)",
			Arity:      2,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Add(a.ReLU(a.Mul(x[0], x[1])), a.ReLU(a.Neg(x[0])))
			},
			Points: [][]float64{{1, 2}, {-1, 2}},
		},
		{
			Name:       "inverse-square",
			Expression: "1 / (x * x)",
			Arity:      1,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Inv(a.Mul(x[0], x[0]))
			},
			Points: [][]float64{{2}, {-0.75}},
		},
		{
			Name:       "gated",
			Expression: "lt(x, y) * x + eq(x, y) * y",
			Arity:      2,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				return a.Add(a.Mul(a.LT(x[0], x[1]), x[0]), a.Mul(a.EQ(x[0], x[1]), x[1]))
			},
			Points: [][]float64{{1, 2}, {3, 2}},
		},
		{
			Name:       "polynomial",
			Expression: "x³ - 2x² + x",
			Arity:      1,
			Build: func(a *scalar.Arena, x ...*scalar.Scalar) *scalar.Scalar {
				x2 := a.Mul(x[0], x[0])
				x3 := a.Mul(x2, x[0])
				return a.Add(a.Sub(x3, a.Mul(a.Constant(2), x2)), x[0])
			},
			Points: [][]float64{{2}, {-1}},
		},
	}
}

// Lookup returns the catalogue case with the given name.
func Lookup(name string) (Case, bool) {
	for _, c := range Catalog() {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}
