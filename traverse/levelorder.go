package traverse

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// LevelOrder walks t breadth-first from root. Order is non-decreasing in
// depth, so every parent precedes its children.
//
// The queue is the result's Order slice itself: entries are appended on
// discovery and consumed by a moving head index.
func LevelOrder(t *tree.Tree, root int, opts ...Option) (*Result, error) {
	o, err := resolve(t, root, opts)
	if err != nil {
		return nil, err
	}

	res := newResult(t, root)
	seen := make([]bool, t.N()+1)
	seen[root] = true
	res.Parent[root] = tree.NoParent
	res.Order = append(res.Order, Visit{Node: root, Parent: tree.NoParent})

	for head := 0; head < len(res.Order); head++ {
		if (head+1)%o.CheckEvery == 0 {
			if err = cancelled(o.Ctx); err != nil {
				return nil, fmt.Errorf("traverse: level-order: %w", err)
			}
		}

		cur := res.Order[head]
		if o.OnVisit != nil {
			if err = o.OnVisit(cur); err != nil {
				return nil, fmt.Errorf("traverse: OnVisit hook for %d: %w", cur.Node, err)
			}
		}
		for _, v := range t.Neighbors(cur.Node) {
			if v == cur.Parent {
				continue
			}
			if seen[v] {
				return nil, fmt.Errorf("%w: revisited %d", ErrMalformedTree, v)
			}
			seen[v] = true
			res.Parent[v] = cur.Node
			res.Depth[v] = cur.Depth + 1
			res.Order = append(res.Order, Visit{Node: v, Parent: cur.Node, Depth: cur.Depth + 1})
		}
	}

	if err = checkCount(res); err != nil {
		return nil, err
	}
	return res, nil
}
