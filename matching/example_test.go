package matching_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtree/matching"
	"github.com/katalvlaran/lvtree/tree"
)

// ExampleCompute matches the complete binary tree on 7 nodes.
func ExampleCompute() {
	tr, _ := tree.New(7, []tree.Edge{
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 4}, {U: 2, V: 5},
		{U: 3, V: 6}, {U: 3, V: 7},
	})
	res, err := matching.Compute(context.Background(), tr, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Size)
	for _, e := range res.Edges() {
		fmt.Println(e.U, e.V)
	}

	// Output:
	// 2
	// 3 6
	// 2 4
}
