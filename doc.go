// Package lvtree is a tree dynamic-programming engine: build a tree once,
// walk it without recursion, fold per-node states bottom-up, and re-derive
// any rooted answer for every node with one extra top-down pass.
//
// 🚀 What is inside?
//
//	tree/      — compact adjacency store over nodes 1..n, optional strict validation
//	traverse/  — iterative post-order and level-order walks with hooks and cancellation
//	aggregate/ — generic Combiner + Run, and the classic subtree recurrences:
//	             size, sum, diameter, longest path, independent set, vertex cover,
//	             2-colouring, k-colouring count
//	matching/  — O(n) maximum matching with edge reconstruction
//	reroot/    — sum of distances and eccentricities for every node
//	builder/   — deterministic fixture trees: path, star, binary, caterpillar, random
//	solve/     — problem catalogue, input decoder, instrumented Run, result printer
//	config/    — YAML + LVTREE_* environment configuration
//	cmd/lvtree — command-line driver
//
// ✨ Guarantees
//
//   - No recursion: a 10⁵-node path is as safe as a balanced tree.
//   - O(n) time and memory for every algorithm; no globals, no shared state.
//   - Per-node results are slices of length n+1 indexed by node id.
//   - Sentinel errors per package, wrapped with %w.
//
// Quick start:
//
//	t, _ := tree.New(4, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}})
//	ps, _ := aggregate.Diameter(t, 1)          // ps.Best == 3
//	m, _ := matching.Compute(ctx, t, 1)        // m.Size == 2
//	d, _ := reroot.SumOfDistances(ctx, t, 1)   // d[1:] == [6 4 4 6]
package lvtree
