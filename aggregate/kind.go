package aggregate

import (
	"fmt"

	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// Kind selects a built-in combiner for Aggregate.
type Kind int

// Built-in aggregation kinds.
const (
	KindSize Kind = iota + 1
	KindSum
	KindDiameter
	KindWeightedDiameter
	KindLongestPath
	KindIndependentSet
	KindVertexCover
	KindColoring
	KindColoringCount
)

var kindNames = map[Kind]string{
	KindSize:             "size",
	KindSum:              "sum",
	KindDiameter:         "diameter",
	KindWeightedDiameter: "weighted-diameter",
	KindLongestPath:      "longest-path",
	KindIndependentSet:   "independent-set",
	KindVertexCover:      "vertex-cover",
	KindColoring:         "coloring",
	KindColoringCount:    "coloring-count",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Payload carries the optional per-node inputs of a Kind. Fields a kind does
// not use are ignored.
type Payload struct {
	Values []int64    // Sum, LongestPath, IndependentSet, VertexCover
	Costs  [][2]int64 // Coloring
	K, Mod int64      // ColoringCount
}

// Summary is the kind-independent view of an aggregation: one scalar per
// node plus the answer for the whole tree.
type Summary struct {
	Kind Kind
	Root int

	// PerNode is indexed by node id:
	//   size/sum         subtree value
	//   path kinds       best downward path (Heights.Down)
	//   two-state kinds  best of the node's two states
	//   coloring-count   Colorings.Ways
	PerNode []int64

	// Pairs holds the raw two-state tuples for two-state kinds; nil otherwise.
	Pairs []Pair

	// Best is the answer for the whole tree.
	Best int64
}

// Aggregate runs the combiner selected by kind and reports its Summary.
func Aggregate(t *tree.Tree, root int, kind Kind, p Payload, opts ...traverse.Option) (*Summary, error) {
	s := &Summary{Kind: kind, Root: root}

	switch kind {
	case KindSize, KindSum:
		var (
			vals []int64
			err  error
		)
		if kind == KindSize {
			vals, err = SubtreeSize(t, root, opts...)
		} else {
			vals, err = SubtreeSum(t, root, p.Values, opts...)
		}
		if err != nil {
			return nil, err
		}
		s.PerNode, s.Best = vals, vals[root]

	case KindDiameter, KindWeightedDiameter, KindLongestPath:
		var (
			ps  *Paths
			err error
		)
		switch kind {
		case KindDiameter:
			ps, err = Diameter(t, root, opts...)
		case KindWeightedDiameter:
			ps, err = WeightedDiameter(t, root, opts...)
		default:
			ps, err = LongestPath(t, root, p.Values, opts...)
		}
		if err != nil {
			return nil, err
		}
		s.PerNode = make([]int64, len(ps.Heights))
		for u := 1; u < len(ps.Heights); u++ {
			s.PerNode[u] = ps.Heights[u].Down
		}
		s.Best = ps.Best

	case KindIndependentSet, KindVertexCover, KindColoring:
		var (
			ts  *TwoState
			err error
		)
		better := minOf
		switch kind {
		case KindIndependentSet:
			ts, err = IndependentSet(t, root, p.Values, opts...)
			better = maxOf
		case KindVertexCover:
			ts, err = VertexCover(t, root, p.Values, opts...)
		default:
			ts, err = Coloring(t, root, p.Costs, opts...)
		}
		if err != nil {
			return nil, err
		}
		s.Pairs = ts.States
		s.PerNode = make([]int64, len(ts.States))
		for u := 1; u < len(ts.States); u++ {
			s.PerNode[u] = better(ts.States[u][0], ts.States[u][1])
		}
		s.Best = ts.Value

	case KindColoringCount:
		cs, err := CountColorings(t, root, p.K, p.Mod, opts...)
		if err != nil {
			return nil, err
		}
		s.PerNode, s.Best = cs.Ways, cs.Total

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	return s, nil
}

func minOf(a, b int64) int64 { return min(a, b) }

func maxOf(a, b int64) int64 { return max(a, b) }
