// Package gradcheck validates backpropagated derivatives against central
// differences.
//
// A Case describes a scalar expression by how to build it on an Arena. Check
// evaluates one case at one point: it backpropagates through the graph, then
// estimates every partial derivative numerically by re-evaluating the
// expression with a single argument perturbed, and compares the two.
//
// Usage:
//
//	cfg := gradcheck.DefaultConfig()
//	result, err := gradcheck.Check(cfg, gradcheck.Catalog()[0], []float64{1.0})
//	if errors.Is(err, gradcheck.ErrMismatch) {
//	    // analytic and numeric derivatives disagree
//	}
package gradcheck

import (
	"math"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/operators"
	"github.com/born-ml/minigrad/internal/parallel"
	"github.com/born-ml/minigrad/internal/scalar"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrMismatch is returned when an analytic derivative differs from its
// numerical estimate by Tolerance or more.
var ErrMismatch = errors.New("analytic and numerical derivatives disagree")

// Config controls a gradient check.
type Config struct {
	Epsilon   float64         // Step size for the central difference.
	Tolerance float64         // Maximum absolute difference accepted.
	Parallel  parallel.Config // Fan-out used by CheckAll.
}

// DefaultConfig returns the library defaults: ε = 1e-6 and a tolerance of 1e-2.
func DefaultConfig() Config {
	return Config{
		Epsilon:   autodiff.DefaultEpsilon,
		Tolerance: operators.CloseTolerance,
		Parallel:  parallel.DefaultConfig(),
	}
}

// BuildFunc builds an expression over args on arena and returns its output.
type BuildFunc func(arena *scalar.Arena, args ...*scalar.Scalar) *scalar.Scalar

// Case is a named expression with the points it should be checked at.
type Case struct {
	Name       string
	Expression string
	Arity      int
	Build      BuildFunc
	Points     [][]float64
}

// Arg is the outcome for one argument of a checked point.
type Arg struct {
	Index    int
	Analytic float64
	Numeric  float64
	OK       bool
}

// Result is the outcome of checking one case at one point.
type Result struct {
	Case  string
	Point []float64
	Value float64
	Args  []Arg
	Err   error
}

// OK reports whether every argument agreed and no error occurred.
func (r Result) OK() bool {
	return r.Err == nil
}

// Evaluate computes the value of c at point without recording a graph.
func Evaluate(c Case, point ...float64) float64 {
	arena := scalar.NewArena()
	arena.SetNoGrad(true)
	return c.Build(arena, arena.Leaves(point...)...).Value()
}

// Check compares backpropagated and numerical derivatives of c at point.
//
// The returned error wraps ErrMismatch when any argument disagrees, and
// carries the panic of a precondition violation raised while building or
// differentiating the expression.
func Check(cfg Config, c Case, point []float64) (result Result, err error) {
	result = Result{Case: c.Name, Point: point}
	if len(point) != c.Arity {
		err = errors.Errorf("case %q takes %d arguments, got %d", c.Name, c.Arity, len(point))
		result.Err = err
		return
	}

	err = exceptions.TryCatch[error](func() {
		arena := scalar.NewArena()
		leaves := arena.Leaves(point...)
		output := c.Build(arena, leaves...)
		output.Backward()
		result.Value = output.Value()

		f := func(vals ...float64) float64 { return Evaluate(c, vals...) }
		result.Args = make([]Arg, len(leaves))
		for i, leaf := range leaves {
			numeric := autodiff.CentralDifferenceWithEpsilon(f, i, cfg.Epsilon, point...)
			result.Args[i] = Arg{
				Index:    i,
				Analytic: leaf.Derivative(),
				Numeric:  numeric,
				OK:       math.Abs(leaf.Derivative()-numeric) < cfg.Tolerance,
			}
		}
	})
	if err != nil {
		err = errors.WithMessagef(err, "case %q at %v", c.Name, point)
		result.Err = err
		return
	}

	for _, arg := range result.Args {
		if arg.OK {
			continue
		}
		klog.V(1).Infof("gradcheck: %s at %v: argument %d: analytic %g, numeric %g",
			c.Name, point, arg.Index, arg.Analytic, arg.Numeric)
		if err == nil {
			err = errors.Wrapf(ErrMismatch, "case %q at %v: argument %d: analytic %g, numeric %g",
				c.Name, point, arg.Index, arg.Analytic, arg.Numeric)
		}
	}
	result.Err = err
	return
}

// CheckAll checks every case at each of its points, fanning out with
// cfg.Parallel. Each check builds its own arena, so checks share no state.
//
// Results are returned in case order, then point order. The error is non-nil
// when any check failed and wraps the first failure.
func CheckAll(cfg Config, cases []Case) ([]Result, error) {
	type job struct {
		c     Case
		point []float64
	}
	var jobs []job
	for _, c := range cases {
		for _, p := range c.Points {
			jobs = append(jobs, job{c: c, point: p})
		}
	}

	results := make([]Result, len(jobs))
	parallel.For(len(jobs), func(i int) {
		results[i], _ = Check(cfg, jobs[i].c, jobs[i].point)
	}, cfg.Parallel)

	var first error
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if first == nil {
				first = r.Err
			}
		}
	}
	if first != nil {
		return results, errors.WithMessagef(first, "%d of %d gradient checks failed", failed, len(results))
	}
	return results, nil
}
