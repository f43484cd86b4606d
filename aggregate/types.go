package aggregate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

var (
	// ErrPayloadLength indicates a per-node payload whose length is not n+1.
	ErrPayloadLength = errors.New("aggregate: payload length mismatch")

	// ErrBadColorCount indicates a non-positive number of colours.
	ErrBadColorCount = errors.New("aggregate: color count must be positive")

	// ErrBadModulus indicates a non-positive modulus.
	ErrBadModulus = errors.New("aggregate: modulus must be positive")

	// ErrUnknownKind indicates an unsupported Kind.
	ErrUnknownKind = errors.New("aggregate: unknown kind")
)

// Combiner folds the finished states of a node's children into the node's
// own state.
//
// For every node u, in post-order, the engine calls Init(u) once, Absorb once
// per child (in adjacency order) and Finish once; the returned value becomes
// the write-once state of u.
type Combiner[S any] interface {
	// Init returns u's accumulator before any child has been absorbed.
	Init(u int) S

	// Absorb folds the finished state cs of child, reached from u over an
	// edge of weight w, into acc.
	Absorb(u int, acc S, child int, cs S, w int64) S

	// Finish seals u's state once every child has been absorbed.
	Finish(u int, acc S) S
}

// Result holds the per-node states of one Run.
type Result[S any] struct {
	Root int

	// States is indexed by node id; index 0 is the zero value.
	States []S

	// Walk is the post-order traversal the states were computed on.
	Walk *traverse.Result
}

// At returns the state of node u.
func (r *Result[S]) At(u int) S { return r.States[u] }

// Pair is a two-state accumulator. The meaning of each slot depends on the
// recurrence: Out/In for set problems, colour 0/1 for Coloring.
type Pair [2]int64

// Slot names for Pair.
const (
	Out = 0 // node excluded
	In  = 1 // node included
)

func checkPayload[T any](t *tree.Tree, name string, p []T) error {
	if p != nil && len(p) != t.N()+1 {
		return fmt.Errorf("%w: %s has %d entries, want n+1=%d", ErrPayloadLength, name, len(p), t.N()+1)
	}
	return nil
}
