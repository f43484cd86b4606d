// Package tree provides the static, read-only tree store shared by every
// lvtree algorithm.
//
// A Tree holds n nodes identified by 1..n and exactly n-1 undirected edges.
// Adjacency is kept in compressed form (offsets + targets + weights), built
// once by New and never mutated afterwards, so a *Tree may be shared freely
// between analyses.
//
// Conventions used across the module:
//
//   - Node ids are 1-based. Every per-node slice returned by lvtree packages
//     has length n+1; index 0 is unused.
//   - NoParent (0) marks the root in parent tables.
//   - Neighbours are reported in input order: the edge list order decides the
//     order in which traversals visit children.
//
// Validation:
//
//	New always rejects the cheap structural violations (n < 1, wrong edge
//	count, id out of range, self-loop) with errors wrapping ErrInvalidInput.
//	Duplicate edges, cycles and disconnection are only detected when
//	WithStrictValidation is supplied; otherwise a malformed tree is a caller
//	error and downstream results are undefined.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory (plus O(n·α(n)) with strict validation).
//   - Neighbors: O(1), returns a view into the shared adjacency.
package tree
