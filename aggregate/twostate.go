package aggregate

import (
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// TwoState is the outcome of a two-state subtree recurrence.
type TwoState struct {
	Root int

	// States[u] holds both recurrences for u's subtree.
	States []Pair

	// Value is the answer for the whole tree, read off States[Root].
	Value int64

	Walk *traverse.Result

	// pick chooses u's slot given its parent's slot (-1 at the root).
	pick func(p Pair, parentSlot int) int
}

// Assignment replays the recurrences top-down and returns, for every node,
// the slot (0 or 1) of one optimal solution. Index 0 is unused.
//
// The post-order walk reversed visits every parent before its children, so
// each choice only depends on an already fixed parent slot.
func (r *TwoState) Assignment() []int {
	slot := make([]int, len(r.States))
	order := r.Walk.Order
	for i := len(order) - 1; i >= 0; i-- {
		vis := order[i]
		ps := -1
		if vis.Parent != tree.NoParent {
			ps = slot[vis.Parent]
		}
		slot[vis.Node] = r.pick(r.States[vis.Node], ps)
	}
	return slot
}

// Chosen returns the nodes assigned slot In, in increasing id order.
func (r *TwoState) Chosen() []int {
	var out []int
	for u, s := range r.Assignment() {
		if u > 0 && s == In {
			out = append(out, u)
		}
	}
	return out
}

func weightOf(w []int64, u int) int64 {
	if w == nil {
		return 1
	}
	return w[u]
}

// independentSet: out = Σ max(child), in = w(u) + Σ child.out.
type independentSet struct{ w []int64 }

func (c independentSet) Init(u int) Pair { return Pair{0, weightOf(c.w, u)} }

func (independentSet) Absorb(_ int, acc Pair, _ int, cs Pair, _ int64) Pair {
	acc[Out] += max(cs[Out], cs[In])
	acc[In] += cs[Out]
	return acc
}

func (independentSet) Finish(_ int, acc Pair) Pair { return acc }

// vertexCover: out = Σ child.in, in = w(u) + Σ min(child).
type vertexCover struct{ w []int64 }

func (c vertexCover) Init(u int) Pair { return Pair{0, weightOf(c.w, u)} }

func (vertexCover) Absorb(_ int, acc Pair, _ int, cs Pair, _ int64) Pair {
	acc[Out] += cs[In]
	acc[In] += min(cs[Out], cs[In])
	return acc
}

func (vertexCover) Finish(_ int, acc Pair) Pair { return acc }

// coloring: [c] = cost(u,c) + Σ child[1-c].
type coloring struct{ cost [][2]int64 }

func (c coloring) Init(u int) Pair { return Pair(c.cost[u]) }

func (coloring) Absorb(_ int, acc Pair, _ int, cs Pair, _ int64) Pair {
	acc[0] += cs[1]
	acc[1] += cs[0]
	return acc
}

func (coloring) Finish(_ int, acc Pair) Pair { return acc }

// IndependentSet computes a maximum-weight independent set. A nil weights
// slice gives every node weight 1 (maximum cardinality).
func IndependentSet(t *tree.Tree, root int, weights []int64, opts ...traverse.Option) (*TwoState, error) {
	if t == nil {
		return nil, traverse.ErrTreeNil
	}
	if err := checkPayload(t, "weights", weights); err != nil {
		return nil, err
	}
	res, err := Run[Pair](t, root, independentSet{w: weights}, opts...)
	if err != nil {
		return nil, err
	}
	rp := res.States[root]
	return &TwoState{
		Root:   root,
		States: res.States,
		Value:  max(rp[Out], rp[In]),
		Walk:   res.Walk,
		pick: func(p Pair, parentSlot int) int {
			if parentSlot == In || p[In] <= p[Out] {
				return Out
			}
			return In
		},
	}, nil
}

// VertexCover computes a minimum-weight vertex cover. A nil weights slice
// gives every node weight 1 (minimum cardinality).
func VertexCover(t *tree.Tree, root int, weights []int64, opts ...traverse.Option) (*TwoState, error) {
	if t == nil {
		return nil, traverse.ErrTreeNil
	}
	if err := checkPayload(t, "weights", weights); err != nil {
		return nil, err
	}
	res, err := Run[Pair](t, root, vertexCover{w: weights}, opts...)
	if err != nil {
		return nil, err
	}
	rp := res.States[root]
	return &TwoState{
		Root:   root,
		States: res.States,
		Value:  min(rp[Out], rp[In]),
		Walk:   res.Walk,
		pick: func(p Pair, parentSlot int) int {
			if parentSlot == Out || p[In] < p[Out] {
				return In
			}
			return Out
		},
	}, nil
}

// Coloring computes the cheapest proper 2-colouring of t, where cost[u][c]
// is the price of giving node u colour c. Assignment returns the colours.
func Coloring(t *tree.Tree, root int, cost [][2]int64, opts ...traverse.Option) (*TwoState, error) {
	if t == nil {
		return nil, traverse.ErrTreeNil
	}
	if cost == nil {
		cost = make([][2]int64, t.N()+1)
	}
	if err := checkPayload(t, "cost", cost); err != nil {
		return nil, err
	}
	res, err := Run[Pair](t, root, coloring{cost: cost}, opts...)
	if err != nil {
		return nil, err
	}
	rp := res.States[root]
	return &TwoState{
		Root:   root,
		States: res.States,
		Value:  min(rp[0], rp[1]),
		Walk:   res.Walk,
		pick: func(p Pair, parentSlot int) int {
			if parentSlot >= 0 {
				return 1 - parentSlot
			}
			if p[1] < p[0] {
				return 1
			}
			return 0
		},
	}, nil
}
