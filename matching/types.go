package matching

import (
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// Result is the outcome of Compute.
type Result struct {
	Root int

	// Unmatched and MatchedUp are indexed by node id; index 0 is unused.
	Unmatched []int64
	MatchedUp []int64

	// Partner[u] is the child u claims when its parent edge is free, or
	// tree.NoParent when no swap improves on the baseline.
	Partner []int

	// Size is the number of edges of a maximum matching.
	Size int64

	Walk *traverse.Result
}

// Edges returns one maximum matching as (parent, child) pairs, in top-down order.
func (r *Result) Edges() []tree.Edge {
	out := make([]tree.Edge, 0, r.Size)
	reserved := make([]bool, len(r.Partner))
	order := r.Walk.Order
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i].Node
		if reserved[u] {
			continue
		}
		if v := r.Partner[u]; v != tree.NoParent {
			reserved[v] = true
			out = append(out, tree.Edge{U: u, V: v})
		}
	}
	return out
}
