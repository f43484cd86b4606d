package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor for the path 1-2-...-n.
// Edges are emitted as (i, i+1) for i ascending.
func Path(n int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if n < minPathNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, tree.Edge{U: i, V: i + 1})
		}
		return n, edges, nil
	}
}
