package autodiff

import (
	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// edge records that parent feeds child in the forward computation.
type edge struct {
	parent, child int64
}

// TopologicalSort returns every non-constant Variable reachable from output
// through parent links, ordered so that each node appears before all of its
// parents. The first element is output itself (unless output is a constant,
// in which case the result is empty).
//
// Algorithm:
//  1. Walk backwards from output with an explicit stack, skipping constants
//     and already visited ids, and record one parent->child edge per link
//  2. Build the dependency graph from the edges (each child depends on its parents)
//  3. Order it parents-before-children, then reverse
//
// Nodes with no mutual dependency are ordered by ascending UniqueID before the
// reversal, so the result is deterministic for a fixed graph.
//
// The graph must be acyclic. A cycle is a caller error and panics.
func TopologicalSort[T constraints.Float](output Variable[T]) []Variable[T] {
	visited := make(map[int64]Variable[T])
	var ids []int64
	var edges []edge

	stack := []Variable[T]{output}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if v.IsConstant() {
			continue
		}
		id := v.UniqueID()
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = v
		ids = append(ids, id)

		if v.IsLeaf() {
			continue
		}
		for _, parent := range v.Parents() {
			if parent.IsConstant() {
				continue
			}
			edges = append(edges, edge{parent: parent.UniqueID(), child: id})
			stack = append(stack, parent)
		}
	}

	sorted := sortDependencies(ids, edges)
	order := make([]Variable[T], len(sorted))
	for i, id := range sorted {
		order[len(sorted)-1-i] = visited[id]
	}
	return order
}

// sortDependencies returns ids ordered so that every edge's parent comes
// before its child.
func sortDependencies(ids []int64, edges []edge) []int64 {
	deps := simple.NewDirectedGraph()
	for _, id := range ids {
		deps.AddNode(simple.Node(id))
	}
	for _, e := range edges {
		if e.parent == e.child {
			exceptions.Panicf("TopologicalSort: variable %d is its own parent, the computation graph must be acyclic", e.child)
		}
		deps.SetEdge(deps.NewEdge(simple.Node(e.parent), simple.Node(e.child)))
	}

	sorted, err := topo.SortStabilized(deps, nil)
	if err != nil {
		exceptions.Panicf("TopologicalSort: the computation graph must be acyclic: %v", err)
	}

	order := make([]int64, len(sorted))
	for i, n := range sorted {
		order[i] = n.ID()
	}
	return order
}
