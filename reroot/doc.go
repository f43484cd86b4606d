// Package reroot derives, for every node, a metric "as if that node were the
// root" from a single rooted aggregation plus one top-down pass.
//
// Sum of distances: with size(v) the subtree size of v under the original
// root, moving the root across the edge (u, v) brings size(v) nodes one step
// closer and pushes the other n-size(v) one step away:
//
//	ans(v) = ans(u) - size(v) + (n - size(v))
//
// Eccentricity: the farthest node from v lies either below v (its height) or
// above it, reached through the parent u. The upward value is
//
//	up(v) = 1 + max(up(u), best height of u avoiding v)
//
// where the best-two heights kept by aggregate.Diameter answer "avoiding v"
// in O(1).
//
// Both passes walk traverse.LevelOrder, so a parent's answer is always final
// before its children are visited.
package reroot
