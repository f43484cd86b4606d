// Package solve is the problem catalogue: one Problem per classic tree DP,
// a decoder for the whitespace input format those problems share, and Run,
// which builds the tree, dispatches to the engine packages and returns a
// Report that prints the familiar result lines.
//
// Input format (all integers, any whitespace):
//
//	n
//	[k]                      coloring_count only
//	[v_1 ... v_n]            subtree_sum, longest_path, max_independent_set
//	[c_1,0 c_1,1 ... ]       tree_coloring: two costs per node
//	u v        × (n-1)       edges, or
//	u v w      × (n-1)       longest_edge_path
//
// Every Run carries a uuid run id, one OpenTelemetry span and, when
// WithMetrics is given, Prometheus observations on the caller's Metrics.
package solve
