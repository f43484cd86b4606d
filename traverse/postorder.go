package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// frame is one activation on the explicit DFS stack.
type frame struct {
	v, p, d int
	next    int // cursor into the neighbour list of v
}

// PostOrder walks t depth-first from root and returns every node in
// post-order (children before parent).
//
// Each frame keeps a cursor into its neighbour list. On every step the top
// frame either descends into its next non-parent neighbour or, when the
// cursor is exhausted, pops and emits its node. Stack depth is bounded by
// the tree height but lives on the heap.
func PostOrder(t *tree.Tree, root int, opts ...Option) (*Result, error) {
	o, err := resolve(t, root, opts)
	if err != nil {
		return nil, err
	}

	res := newResult(t, root)
	stack := make([]frame, 0, 64)

	seen := make([]bool, t.N()+1)
	push := func(v, p, d int) error {
		if seen[v] {
			return fmt.Errorf("%w: revisited %d", ErrMalformedTree, v)
		}
		seen[v] = true
		res.Parent[v] = p
		res.Depth[v] = d
		if o.OnVisit != nil {
			if err := o.OnVisit(Visit{Node: v, Parent: p, Depth: d}); err != nil {
				return fmt.Errorf("traverse: OnVisit hook for %d: %w", v, err)
			}
		}
		stack = append(stack, frame{v: v, p: p, d: d})
		return nil
	}

	if err = push(root, tree.NoParent, 0); err != nil {
		return nil, err
	}

	steps := 0
	for len(stack) > 0 {
		steps++
		if steps%o.CheckEvery == 0 {
			if err = cancelled(o.Ctx); err != nil {
				return nil, fmt.Errorf("traverse: post-order: %w", err)
			}
		}

		top := &stack[len(stack)-1]
		nbs := t.Neighbors(top.v)
		for top.next < len(nbs) && nbs[top.next] == top.p {
			top.next++
		}
		if top.next < len(nbs) {
			child := nbs[top.next]
			top.next++
			if err = push(child, top.v, top.d+1); err != nil {
				return nil, err
			}
			continue
		}

		vis := Visit{Node: top.v, Parent: top.p, Depth: top.d}
		stack = stack[:len(stack)-1]
		if o.OnExit != nil {
			if err = o.OnExit(vis); err != nil {
				return nil, fmt.Errorf("traverse: OnExit hook for %d: %w", vis.Node, err)
			}
		}
		res.Order = append(res.Order, vis)
	}

	if err = checkCount(res); err != nil {
		return nil, err
	}
	return res, nil
}
