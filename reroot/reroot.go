package reroot

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtree/aggregate"
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// Reroot turns subtree sizes and downward distance sums computed rooted at
// root (see aggregate.SubtreeDistances) into the sum of distances from every
// node to all others. The result is indexed by node id.
//
// Complexity: O(n).
func Reroot(ctx context.Context, t *tree.Tree, root int, sizes, distSums []int64, opts ...traverse.Option) ([]int64, error) {
	if t == nil {
		return nil, traverse.ErrTreeNil
	}
	if err := checkSeed(t, "sizes", sizes); err != nil {
		return nil, err
	}
	if err := checkSeed(t, "distSums", distSums); err != nil {
		return nil, err
	}

	opts = append([]traverse.Option{traverse.WithContext(ctx)}, opts...)
	walk, err := traverse.LevelOrder(t, root, opts...)
	if err != nil {
		return nil, err
	}

	n := int64(t.N())
	if sizes[root] != n {
		return nil, fmt.Errorf("%w: size(%d)=%d, want %d", ErrSeedMismatch, root, sizes[root], n)
	}

	ans := make([]int64, t.N()+1)
	ans[root] = distSums[root]
	for _, vis := range walk.Order[1:] {
		v := vis.Node
		ans[v] = ans[vis.Parent] - sizes[v] + (n - sizes[v])
	}
	return ans, nil
}

// SumOfDistances returns, for every node v, Σ dist(v, x) over all nodes x.
// root only fixes the orientation of the two passes; the answer does not
// depend on it.
func SumOfDistances(ctx context.Context, t *tree.Tree, root int, opts ...traverse.Option) ([]int64, error) {
	opts = append([]traverse.Option{traverse.WithContext(ctx)}, opts...)
	seed, err := aggregate.SubtreeDistances(t, root, opts...)
	if err != nil {
		return nil, err
	}
	return Reroot(ctx, t, root, seed.Size, seed.DistSum, opts...)
}

// Eccentricities returns, for every node, the number of edges to its
// farthest node.
func Eccentricities(ctx context.Context, t *tree.Tree, root int, opts ...traverse.Option) (*Eccentricity, error) {
	opts = append([]traverse.Option{traverse.WithContext(ctx)}, opts...)
	down, err := aggregate.Diameter(t, root, opts...)
	if err != nil {
		return nil, err
	}
	walk, err := traverse.LevelOrder(t, root, opts...)
	if err != nil {
		return nil, err
	}

	h := down.Heights
	up := make([]int64, t.N()+1)
	ecc := make([]int64, t.N()+1)
	ecc[root] = h[root].Down
	for _, vis := range walk.Order[1:] {
		v, u := vis.Node, vis.Parent
		sibling := h[u].Max1
		if h[u].Arg1 == v {
			sibling = h[u].Max2
		}
		up[v] = 1 + max(up[u], sibling)
		ecc[v] = max(h[v].Down, up[v])
	}
	return &Eccentricity{Root: root, Ecc: ecc}, nil
}
