package tree

import "fmt"

// checkAcyclic runs a disjoint-set pass over the edges. With exactly n-1
// edges, the absence of a cycle (a duplicate edge is a 2-cycle) implies the
// graph is connected, so this is a full tree check.
// Path compression plus union by rank: O(n·α(n)).
func checkAcyclic(n int, edges []Edge) error {
	parent := make([]int, n+1)
	rank := make([]int, n+1)
	for u := range parent {
		parent[u] = u
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	for i, e := range edges {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			return fmt.Errorf("%w: edge #%d (%d,%d) closes a cycle: %w", ErrInvalidInput, i, e.U, e.V, ErrNotATree)
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	return nil
}
