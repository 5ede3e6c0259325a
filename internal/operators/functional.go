package operators

// Map applies fn to every element of ls.
func Map(ls []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(ls))
	for i, v := range ls {
		out[i] = fn(v)
	}
	return out
}

// ZipWith combines a and b element-wise with fn.
// The result has the length of the shorter input.
func ZipWith(a, b []float64, fn func(float64, float64) float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range n {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// Reduce folds ls from the left with fn, starting from the first element.
// An empty list reduces to 0.
func Reduce(ls []float64, fn func(float64, float64) float64) float64 {
	if len(ls) == 0 {
		return 0
	}
	acc := ls[0]
	for _, v := range ls[1:] {
		acc = fn(acc, v)
	}
	return acc
}

// NegList negates every element.
func NegList(ls []float64) []float64 {
	return Map(ls, Neg)
}

// AddLists adds a and b element-wise.
func AddLists(a, b []float64) []float64 {
	return ZipWith(a, b, Add)
}

// Sum adds all elements; 0 for an empty list.
func Sum(ls []float64) float64 {
	return Reduce(ls, Add)
}

// Prod multiplies all elements; 0 for an empty list.
func Prod(ls []float64) float64 {
	return Reduce(ls, Mul)
}
