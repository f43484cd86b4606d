package tree

import "fmt"

// New builds a Tree over nodes 1..n from the given undirected edges.
//
// Steps:
//  1. Structural checks: n ≥ 1, len(edges) == n-1, endpoints in [1,n], no self-loops.
//  2. Optional strict validation (WithStrictValidation): union–find over the edges.
//  3. Counting pass for degrees, then a fill pass into the compressed arrays,
//     preserving input order per node.
//
// Complexity: O(n) time and memory.
func New(n int, edges []Edge, opts ...Option) (*Tree, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d, need at least one node", ErrInvalidInput, n)
	}
	if len(edges) != n-1 {
		return nil, fmt.Errorf("%w: got %d edges for %d nodes, want %d", ErrInvalidInput, len(edges), n, n-1)
	}

	degree := make([]int, n+2)
	weighted := false
	for i, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d): %w", ErrInvalidInput, i, e.U, e.V, ErrNodeOutOfRange)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: edge #%d is a self-loop on %d", ErrInvalidInput, i, e.U)
		}
		if e.Weight != 0 {
			weighted = true
		}
		degree[e.U]++
		degree[e.V]++
	}

	if o.strict {
		if err := checkAcyclic(n, edges); err != nil {
			return nil, err
		}
	}

	// offsets[u] is the first slot of u; offsets[n+1] == 2(n-1).
	offsets := make([]int, n+2)
	for u := 1; u <= n; u++ {
		offsets[u+1] = offsets[u] + degree[u]
	}

	targets := make([]int, 2*(n-1))
	weights := make([]int64, 2*(n-1))
	next := make([]int, n+1)
	copy(next, offsets[:n+1])
	for _, e := range edges {
		targets[next[e.U]], weights[next[e.U]] = e.V, e.Weight
		next[e.U]++
		targets[next[e.V]], weights[next[e.V]] = e.U, e.Weight
		next[e.V]++
	}

	own := make([]Edge, len(edges))
	copy(own, edges)

	return &Tree{
		n:        n,
		offsets:  offsets,
		targets:  targets,
		weights:  weights,
		edges:    own,
		weighted: weighted,
	}, nil
}

// N returns the number of nodes.
func (t *Tree) N() int { return t.n }

// HasNode reports whether id names a node of t.
func (t *Tree) HasNode(id int) bool { return id >= 1 && id <= t.n }

// Weighted reports whether any edge carries a non-zero weight.
func (t *Tree) Weighted() bool { return t.weighted }

// Neighbors returns the neighbours of u in input order.
// The slice is shared with the tree and must not be modified.
func (t *Tree) Neighbors(u int) []int {
	return t.targets[t.offsets[u]:t.offsets[u+1]]
}

// Adjacent returns the neighbours of u together with the weight of each
// connecting edge. Both slices are shared with the tree and must not be modified.
func (t *Tree) Adjacent(u int) ([]int, []int64) {
	lo, hi := t.offsets[u], t.offsets[u+1]
	return t.targets[lo:hi], t.weights[lo:hi]
}

// Degree returns the number of edges incident to u.
func (t *Tree) Degree(u int) int {
	return t.offsets[u+1] - t.offsets[u]
}

// Edges returns a copy of the edge list in input order.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, len(t.edges))
	copy(out, t.edges)
	return out
}

// Leaves returns every node of degree one (or the single node of a 1-node tree),
// in increasing id order.
func (t *Tree) Leaves() []int {
	if t.n == 1 {
		return []int{1}
	}
	var out []int
	for u := 1; u <= t.n; u++ {
		if t.Degree(u) == 1 {
			out = append(out, u)
		}
	}
	return out
}
