// Package traverse produces visitation orders over a tree.Tree without
// native recursion, so path-shaped trees of 10⁵+ nodes are safe.
//
// What:
//
//   - PostOrder: depth-first walk driven by an explicit frame stack. Every
//     node is emitted exactly once, after all of its descendants and before
//     its parent. Children are explored in adjacency (input) order.
//   - LevelOrder: breadth-first walk; every node is emitted after its parent.
//     Used for top-down passes such as rerooting.
//
// Both walks assign a parent table (tree.NoParent for the root) and a depth
// table for the duration of the result's lifetime; they never modify the tree.
//
// Options:
//
//   - WithContext(ctx)    cancellation, polled every CheckEvery visits.
//   - WithOnVisit(fn)     pre-order hook; an error aborts the walk.
//   - WithOnExit(fn)      post-order hook (PostOrder only); an error aborts the walk.
//   - WithCheckEvery(k)   cancellation polling period (default 1024).
//
// Complexity:
//
//   - Time:   O(n) plus hook cost.
//   - Memory: O(n) for the stack/queue, order, parent and depth tables.
//
// Errors:
//
//   - ErrTreeNil         if t is nil.
//   - ErrRootNotFound    if root is outside [1, n].
//   - ErrOptionViolation for a non-positive CheckEvery.
//   - ErrMalformedTree   when the walk does not reach exactly n nodes
//     (cyclic or disconnected input).
//   - context errors and hook errors, wrapped.
package traverse
