package aggregate

import (
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// Heights is the per-node state of the longest-path family.
//
// Max1 ≥ Max2 are the two largest values child-height + edge-length seen
// among u's children (0 when absent). Arg1 is the child that produced Max1
// (tree.NoParent if none). Down is the best path starting at u and going
// down; Through is the best path whose highest node is u.
type Heights struct {
	Max1, Max2 int64
	Arg1       int
	Down       int64
	Through    int64
}

// Paths is the outcome of a longest-path aggregation.
type Paths struct {
	Root    int
	Heights []Heights

	// Best is the maximum of 0 and every Through. BestNode is the first
	// node in post-order attaining a positive Best, else tree.NoParent.
	Best     int64
	BestNode int

	// Walk is the post-order traversal the heights were computed on.
	Walk *traverse.Result
}

// edgeLength maps an edge weight to its contribution to a path.
type edgeLength func(w int64) int64

var (
	unitLength   edgeLength = func(int64) int64 { return 1 }
	weightLength edgeLength = func(w int64) int64 { return w }
	zeroLength   edgeLength = func(int64) int64 { return 0 }
)

type pathCombiner struct {
	base []int64 // node values; nil means 0
	edge edgeLength
}

func (pathCombiner) Init(int) Heights { return Heights{Arg1: tree.NoParent} }

// Absorb keeps the two largest child heights; ties keep the first seen.
func (c pathCombiner) Absorb(_ int, acc Heights, child int, cs Heights, w int64) Heights {
	h := cs.Down + c.edge(w)
	switch {
	case h > acc.Max1:
		acc.Max2 = acc.Max1
		acc.Max1, acc.Arg1 = h, child
	case h > acc.Max2:
		acc.Max2 = h
	}
	return acc
}

func (c pathCombiner) Finish(u int, acc Heights) Heights {
	var b int64
	if c.base != nil {
		b = c.base[u]
	}
	acc.Down = b + acc.Max1
	acc.Through = b + acc.Max1 + acc.Max2
	return acc
}

func runPaths(t *tree.Tree, root int, c pathCombiner, opts []traverse.Option) (*Paths, error) {
	res, err := Run[Heights](t, root, c, opts...)
	if err != nil {
		return nil, err
	}
	out := &Paths{Root: root, Heights: res.States, BestNode: tree.NoParent, Walk: res.Walk}
	for _, vis := range res.Walk.Order {
		if h := res.States[vis.Node].Through; h > out.Best {
			out.Best, out.BestNode = h, vis.Node
		}
	}
	return out, nil
}

// Diameter computes the number of edges on the longest path of t.
// Heights[u].Down is the height of u's subtree.
func Diameter(t *tree.Tree, root int, opts ...traverse.Option) (*Paths, error) {
	return runPaths(t, root, pathCombiner{edge: unitLength}, opts)
}

// WeightedDiameter computes the longest path of t where every edge counts
// its weight. Weights are assumed non-negative: a missing child and a child
// path of length 0 are indistinguishable.
func WeightedDiameter(t *tree.Tree, root int, opts ...traverse.Option) (*Paths, error) {
	return runPaths(t, root, pathCombiner{edge: weightLength}, opts)
}

// LongestPath computes the maximum node-weight sum over all paths of t. A
// path always contains its highest node; lower branches are only extended
// while they add a positive amount. The empty path counts, so a tree of
// negative values yields 0. values must have length n+1.
func LongestPath(t *tree.Tree, root int, values []int64, opts ...traverse.Option) (*Paths, error) {
	if t == nil {
		return nil, traverse.ErrTreeNil
	}
	if values == nil {
		values = make([]int64, t.N()+1)
	}
	if err := checkPayload(t, "values", values); err != nil {
		return nil, err
	}
	return runPaths(t, root, pathCombiner{base: values, edge: zeroLength}, opts)
}
