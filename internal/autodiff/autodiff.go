// Package autodiff implements reverse-mode automatic differentiation over a
// graph of scalar Variables.
//
// The package does not define any operator. Concrete node types (leaf inputs,
// operation outputs, constants) live elsewhere and plug in by implementing the
// Variable interface.
//
// Architecture:
//   - Variable: the capability every graph node exposes to the engine
//   - Context: per-operation scratch record for values needed by the backward step
//   - TopologicalSort: output-to-leaves processing order over non-constant nodes
//   - Backpropagate: walks the order, applies each node's chain rule and sums
//     contributions per node before depositing them into the leaves
//   - CentralDifference: numerical oracle used to validate the engine
//
// Usage:
//
//	arena := scalar.NewArena()
//	x := arena.Leaf(1.0)
//	y := arena.Sigmoid(arena.Mul(x, arena.Constant(2)))
//
//	autodiff.Backpropagate[float64](y, 1.0)
//	fmt.Println(x.Derivative()) // 2 * σ(2) * (1 - σ(2))
//
// Concurrency: a single call is strictly sequential. Concurrent calls that
// share leaf variables race on the leaves' accumulators and are not supported.
package autodiff

import "golang.org/x/exp/constraints"

// Variable is a node in the computation graph.
//
// Implementations must keep UniqueID stable for the node's lifetime and must
// return the same Parents and ChainRule results for the same input. The engine
// only mutates a Variable through AccumulateDerivative, and only on leaves.
type Variable[T constraints.Float] interface {
	// UniqueID returns the node identity used for deduplication and as a map key.
	UniqueID() int64

	// IsLeaf reports whether the node is a raw input with no parents.
	IsLeaf() bool

	// IsConstant reports whether the node is excluded from differentiation.
	// Constants never enter the processing order and never receive derivatives.
	IsConstant() bool

	// Parents returns the direct predecessors of the node, in input order.
	// Leaves return an empty slice.
	Parents() []Variable[T]

	// AccumulateDerivative adds d into the node's derivative total.
	// Only called on leaves.
	AccumulateDerivative(d T)

	// ChainRule maps the derivative of the final output with respect to this
	// node into one Partial per parent edge.
	ChainRule(dOutput T) []Partial[T]
}

// Partial is the contribution of one parent edge to the parent's derivative.
type Partial[T constraints.Float] struct {
	Variable   Variable[T]
	Derivative T
}
