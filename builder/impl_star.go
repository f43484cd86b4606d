package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodStar   = "Star"
	minStarNodes = 1

	// CenterNode is the hub of Star and the first spine node of Caterpillar.
	CenterNode = 1
)

// Star returns a Constructor for a star with hub CenterNode and leaves 2..n.
func Star(n int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if n < minStarNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([]tree.Edge, 0, n-1)
		for leaf := 2; leaf <= n; leaf++ {
			edges = append(edges, tree.Edge{U: CenterNode, V: leaf})
		}
		return n, edges, nil
	}
}
