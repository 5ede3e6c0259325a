package autodiff

import (
	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
	"k8s.io/klog/v2"
)

// Backpropagate computes the derivative of output with respect to every leaf
// reachable from it and adds it into the leaf through AccumulateDerivative.
//
// seed is the derivative of the final result with respect to output,
// typically 1.
//
// Algorithm:
//  1. Get the processing order from TopologicalSort (output first, leaves last)
//  2. Seed the accumulator map with {output: seed}
//  3. For each node in order: leaves receive their accumulated total,
//     other nodes apply ChainRule and add each contribution into the
//     parent's entry
//
// All consumers of a node come before it in the order, so a node reached
// through several paths has the sum of every path's contribution by the time
// it is processed.
//
// Example:
//
//	// d = 3a + 5a
//	autodiff.Backpropagate[float64](d, 1.0)
//	a.Derivative() // 8
func Backpropagate[T constraints.Float](output Variable[T], seed T) {
	order := TopologicalSort(output)
	if klog.V(4).Enabled() {
		klog.Infof("Backpropagate: variable %d, %d variables in processing order", output.UniqueID(), len(order))
	}

	derivatives := map[int64]T{output.UniqueID(): seed}
	for _, v := range order {
		id := v.UniqueID()
		d, found := derivatives[id]
		if !found {
			exceptions.Panicf("Backpropagate: no derivative accumulated for variable %d before it was processed", id)
		}

		if v.IsLeaf() {
			v.AccumulateDerivative(d)
			continue
		}
		accumulate(derivatives, v.ChainRule(d))
	}
}

// accumulate adds each partial into its variable's running total.
// Partials for constants are dropped.
func accumulate[T constraints.Float](derivatives map[int64]T, partials []Partial[T]) {
	for _, p := range partials {
		if p.Variable.IsConstant() {
			continue
		}
		derivatives[p.Variable.UniqueID()] += p.Derivative
	}
}
