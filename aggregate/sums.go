package aggregate

import (
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// sumCombiner implements state(u) = base(u) + Σ state(child).
type sumCombiner struct {
	values []int64 // nil: every node contributes 1
}

func (c sumCombiner) Init(u int) int64 {
	if c.values == nil {
		return 1
	}
	return c.values[u]
}

func (sumCombiner) Absorb(_ int, acc int64, _ int, cs int64, _ int64) int64 { return acc + cs }

func (sumCombiner) Finish(_ int, acc int64) int64 { return acc }

// SubtreeSize returns the number of nodes in every subtree of t rooted at root.
// The result is indexed by node id.
func SubtreeSize(t *tree.Tree, root int, opts ...traverse.Option) ([]int64, error) {
	res, err := Run[int64](t, root, sumCombiner{}, opts...)
	if err != nil {
		return nil, err
	}
	return res.States, nil
}

// SubtreeSum returns, for every node, the sum of values over its subtree.
// values is indexed by node id and must have length n+1.
func SubtreeSum(t *tree.Tree, root int, values []int64, opts ...traverse.Option) ([]int64, error) {
	if t == nil {
		return nil, traverse.ErrTreeNil
	}
	if values == nil {
		values = make([]int64, t.N()+1)
	}
	if err := checkPayload(t, "values", values); err != nil {
		return nil, err
	}
	res, err := Run[int64](t, root, sumCombiner{values: values}, opts...)
	if err != nil {
		return nil, err
	}
	return res.States, nil
}

// Distances is the (size, distance-sum) state used as the seed of rerooting.
type Distances struct {
	Root int

	// Size[u] is the number of nodes in u's subtree.
	Size []int64

	// DistSum[u] is Σ dist(u, x) over x in u's subtree.
	DistSum []int64
}

type distState struct{ size, dist int64 }

type distCombiner struct{}

func (distCombiner) Init(int) distState { return distState{size: 1} }

// Absorb moves every node of the child's subtree one edge further away.
func (distCombiner) Absorb(_ int, acc distState, _ int, cs distState, _ int64) distState {
	acc.size += cs.size
	acc.dist += cs.dist + cs.size
	return acc
}

func (distCombiner) Finish(_ int, acc distState) distState { return acc }

// SubtreeDistances computes subtree sizes and downward distance sums rooted
// at root. DistSum[root] is the sum of distances from root to every node.
func SubtreeDistances(t *tree.Tree, root int, opts ...traverse.Option) (*Distances, error) {
	res, err := Run[distState](t, root, distCombiner{}, opts...)
	if err != nil {
		return nil, err
	}
	out := &Distances{
		Root:    root,
		Size:    make([]int64, len(res.States)),
		DistSum: make([]int64, len(res.States)),
	}
	for u := 1; u < len(res.States); u++ {
		out.Size[u] = res.States[u].size
		out.DistSum[u] = res.States[u].dist
	}
	return out, nil
}
