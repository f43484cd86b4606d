// Package matching computes a maximum matching of a tree in O(n).
//
// Every node u carries two values over its subtree:
//
//	Unmatched[u]  best matching when the edge to u's parent is not used
//	MatchedUp[u]  best matching when u is reserved for its parent edge
//	              (that edge itself is not counted here)
//
// With baseline(u) = Σ Unmatched[child], u either stays free of its
// children (baseline) or claims exactly one child v, which then gives up its
// own best and contributes MatchedUp[v] + 1 instead. Only the single best
// such swap matters because u is the endpoint of at most one matching edge,
// so the transition costs O(1) per child:
//
//	gain(v)      = 1 + MatchedUp[v] - max(Unmatched[v], MatchedUp[v])
//	Unmatched[u] = baseline(u) + max(0, max_v gain(v))
//	MatchedUp[u] = baseline(u)
//
// The answer is Unmatched[root]. Result.Edges replays the recorded partner
// choices top-down to produce one maximum matching.
package matching
