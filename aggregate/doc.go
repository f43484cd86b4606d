// Package aggregate implements bottom-up subtree dynamic programming over a
// tree.Tree.
//
// A single engine, Run, walks the tree in post-order (see package traverse)
// and folds every node's children into the node's state through a
// caller-supplied Combiner. Each state is written exactly once, after all of
// the node's children have been finished, and each child is absorbed with
// O(1) work, so any Combiner whose methods are O(1) costs O(n) in total
// regardless of branching factor.
//
// Built-in combiners:
//
//   - SubtreeSize, SubtreeSum:      state(u) = base(u) + Σ state(child)
//   - Diameter, WeightedDiameter,
//     LongestPath:                   best-two child heights; Through = base+max1+max2
//   - IndependentSet:                [out, in] = [Σ max(out,in), w(u) + Σ out]
//   - VertexCover:                   [out, in] = [Σ in, w(u) + Σ min(out,in)]
//   - Coloring:                      [c] = cost(u,c) + Σ child[1-c]
//   - CountColorings:                dp(u) = Π (k-1)·dp(child)  (mod m)
//   - SubtreeDistances:              (size, Σ distances into the subtree)
//
// Aggregate exposes the same kinds behind one Kind switch for drivers that
// select the problem at run time.
//
// Weighted inputs are indexed by node id (length n+1, index 0 ignored); a nil
// slice means unit weight where that makes sense. All accumulators are int64.
//
// Errors:
//
//   - ErrPayloadLength   weight/cost slice does not have length n+1.
//   - ErrBadColorCount   k < 1 for CountColorings.
//   - ErrBadModulus      modulus < 1 for CountColorings.
//   - ErrUnknownKind     unsupported Kind passed to Aggregate.
//   - errors from package traverse (nil tree, bad root, cancellation).
package aggregate
