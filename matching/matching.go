package matching

import (
	"context"

	"github.com/katalvlaran/lvtree/aggregate"
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

type state struct {
	unmatched, matchedUp int64

	// accumulation only
	baseline, bestGain int64
	partner            int
}

type combiner struct{}

func (combiner) Init(int) state { return state{partner: tree.NoParent} }

// Absorb adds the child's free value to the baseline and keeps the first
// child with the strictly largest gain.
func (combiner) Absorb(_ int, acc state, child int, cs state, _ int64) state {
	acc.baseline += cs.unmatched
	gain := 1 + cs.matchedUp - max(cs.unmatched, cs.matchedUp)
	if gain > acc.bestGain {
		acc.bestGain, acc.partner = gain, child
	}
	return acc
}

func (combiner) Finish(_ int, acc state) state {
	acc.matchedUp = acc.baseline
	acc.unmatched = acc.baseline + acc.bestGain
	return acc
}

// Compute finds a maximum matching of t rooted at root.
// ctx is polled during the traversal; opts are passed to traverse.PostOrder
// after the context option.
//
// Complexity: O(n) time and memory.
func Compute(ctx context.Context, t *tree.Tree, root int, opts ...traverse.Option) (*Result, error) {
	opts = append([]traverse.Option{traverse.WithContext(ctx)}, opts...)
	res, err := aggregate.Run[state](t, root, combiner{}, opts...)
	if err != nil {
		return nil, err
	}

	n := len(res.States)
	out := &Result{
		Root:      root,
		Unmatched: make([]int64, n),
		MatchedUp: make([]int64, n),
		Partner:   make([]int, n),
		Walk:      res.Walk,
	}
	for u := 1; u < n; u++ {
		s := res.States[u]
		out.Unmatched[u], out.MatchedUp[u], out.Partner[u] = s.unmatched, s.matchedUp, s.partner
	}
	out.Size = out.Unmatched[root]
	return out, nil
}
