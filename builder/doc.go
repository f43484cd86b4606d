// Package builder provides deterministic tree fixtures for tests, examples
// and benchmarks of the lvtree packages.
//
// The package follows a functional-options design:
//
//   - Constructor: a closure producing (n, edges) for one topology
//     (Path, Star, Binary, Caterpillar, Random).
//   - BuilderOption: mutates the resolved builderConfig (RNG, edge-weight
//     distribution, label shuffling) before the constructor runs.
//   - BuildTree: the single orchestrator; resolves options, runs the
//     constructor, applies weights and relabelling, and hands the edges to
//     tree.New.
//   - NodeValues / ColorCosts: per-node payloads drawn from the same
//     configuration, indexed by node id (length n+1).
//
// Guarantees:
//
//   - Determinism: equal constructor, options and seed produce identical trees.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil arguments.
//   - Every constructor emits exactly n-1 edges forming a tree over 1..n.
//
// Complexity: every constructor is O(n) time and memory.
package builder
