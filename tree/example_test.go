package tree_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// ExampleNew builds the path 1-2-3-4 and lists each node's neighbours.
func ExampleNew() {
	tr, err := tree.New(4, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}, tree.WithStrictValidation())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for u := 1; u <= tr.N(); u++ {
		fmt.Println(u, tr.Neighbors(u))
	}

	// Output:
	// 1 [2]
	// 2 [1 3]
	// 3 [2 4]
	// 4 [3]
}
