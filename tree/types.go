package tree

import "errors"

// NoParent is the parent of the root in every parent table.
const NoParent = 0

// Sentinel errors for tree construction.
var (
	// ErrInvalidInput is wrapped by every structural rejection in New.
	ErrInvalidInput = errors.New("tree: invalid input")

	// ErrNodeOutOfRange indicates an edge endpoint or root outside [1, n].
	ErrNodeOutOfRange = errors.New("tree: node out of range")

	// ErrNotATree is returned by strict validation when the edges contain a
	// duplicate or a cycle (and therefore leave the graph disconnected).
	ErrNotATree = errors.New("tree: edges do not form a tree")
)

// Edge is an undirected connection between two nodes.
// Weight is only observed by weight-aware algorithms; zero otherwise.
type Edge struct {
	U, V   int
	Weight int64
}

// Option configures tree construction.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrictValidation enables duplicate-edge and cycle detection in New.
func WithStrictValidation() Option {
	return func(o *options) { o.strict = true }
}

// Tree is an immutable adjacency store over nodes 1..n.
//
// Neighbours of u occupy targets[offsets[u]:offsets[u+1]] and the matching
// slice of weights.
type Tree struct {
	n        int
	offsets  []int
	targets  []int
	weights  []int64
	edges    []Edge
	weighted bool
}
