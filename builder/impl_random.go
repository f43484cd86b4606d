package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor for a random recursive tree: node i ≥ 2 is
// attached to a parent drawn uniformly from 1..i-1. Expected height is
// O(log n). Requires an RNG (WithSeed or WithRand).
func Random(n int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if n < minRandomNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 2; i <= n; i++ {
			edges = append(edges, tree.Edge{U: 1 + cfg.rng.Intn(i-1), V: i})
		}
		return n, edges, nil
	}
}
