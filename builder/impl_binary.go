package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodBinary   = "Binary"
	minBinaryNodes = 1
)

// Binary returns a Constructor for the complete binary tree on n nodes in
// heap numbering: the parent of i is i/2. Edges are emitted as (i/2, i)
// for i ascending.
func Binary(n int) Constructor {
	return func(cfg builderConfig) (int, []tree.Edge, error) {
		if n < minBinaryNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBinary, n, minBinaryNodes, ErrTooFewVertices)
		}
		edges := make([]tree.Edge, 0, n-1)
		for i := 2; i <= n; i++ {
			edges = append(edges, tree.Edge{U: i / 2, V: i})
		}
		return n, edges, nil
	}
}
