package solve

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo prints the result lines of the report's problem, e.g.
//
//	Tree diameter: 3
//	Sum of distances from node 2: 4
//
// It implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
	)
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(w, format, args...)
		total += int64(n)
	}
	perNode := func(label string) {
		for u := 1; u < len(r.PerNode); u++ {
			printf("%s %d: %d\n", label, u, r.PerNode[u])
		}
	}

	switch r.Problem {
	case SubtreeSize:
		perNode("Subtree size of node")
	case SubtreeSum:
		perNode("Subtree sum of node")
	case TreeDiameter:
		printf("Tree diameter: %d\n", r.Value)
	case LongestPath:
		printf("Longest path weight: %d\n", r.Value)
	case LongestEdgePath:
		printf("Longest edge-weighted path: %d\n", r.Value)
	case MaxIndependentSet:
		printf("%d\n", r.Value)
	case MinVertexCover:
		printf("Minimum vertex cover size: %d\n", r.Value)
	case MaxMatching:
		printf("Maximum matching size: %d\n", r.Value)
	case TreeColoring:
		printf("Minimum coloring cost: %d\n", r.Value)
	case ColoringCount:
		printf("Number of colorings: %d\n", r.Value)
	case SumOfDistances:
		perNode("Sum of distances from node")
	case Eccentricity:
		perNode("Eccentricity of node")
		printf("Tree radius: %d\n", r.Value)
		printf("Tree centers: %s\n", joinInts(r.Centers))
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProblem, r.Problem)
	}
	return total, err
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
