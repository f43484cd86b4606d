package aggregate

import (
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// Run computes the state of every node of t rooted at root using c.
//
// The tree is walked once with traverse.PostOrder; then, in that order, each
// node's neighbours other than its parent are absorbed into its accumulator.
// Because a child always precedes its parent in the order, every absorbed
// state is final.
//
// Complexity: O(n) time plus the cost of c; O(n) memory.
func Run[S any](t *tree.Tree, root int, c Combiner[S], opts ...traverse.Option) (*Result[S], error) {
	walk, err := traverse.PostOrder(t, root, opts...)
	if err != nil {
		return nil, err
	}

	states := make([]S, t.N()+1)
	for _, vis := range walk.Order {
		u := vis.Node
		acc := c.Init(u)
		nbs, ws := t.Adjacent(u)
		for i, v := range nbs {
			if v == vis.Parent {
				continue
			}
			acc = c.Absorb(u, acc, v, states[v], ws[i])
		}
		states[u] = c.Finish(u, acc)
	}

	return &Result[S]{Root: root, States: states, Walk: walk}, nil
}
