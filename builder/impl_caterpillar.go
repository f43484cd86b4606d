package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodCaterpillar = "Caterpillar"
	minSpineNodes     = 1
)

// Caterpillar returns a Constructor for a spine path 1..spine where every
// spine node carries legs pendant leaves. Leaves are numbered after the
// spine: the legs of spine node s are spine+(s-1)*legs+1 ... spine+s*legs.
// n = spine·(1+legs).
func Caterpillar(spine, legs int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if spine < minSpineNodes {
			return 0, nil, fmt.Errorf("%s: spine=%d < min=%d: %w", methodCaterpillar, spine, minSpineNodes, ErrTooFewVertices)
		}
		if legs < 0 {
			return 0, nil, fmt.Errorf("%s: legs=%d < 0: %w", methodCaterpillar, legs, ErrTooFewVertices)
		}
		n := spine * (1 + legs)
		edges := make([]tree.Edge, 0, n-1)
		for s := 1; s < spine; s++ {
			edges = append(edges, tree.Edge{U: s, V: s + 1})
		}
		next := spine + 1
		for s := 1; s <= spine; s++ {
			for l := 0; l < legs; l++ {
				edges = append(edges, tree.Edge{U: s, V: next})
				next++
			}
		}
		return n, edges, nil
	}
}
