package aggregate_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/aggregate"
	"github.com/katalvlaran/lvtree/tree"
)

// ExampleRun_subtreeSize folds subtree sizes on the path 1-2-3-4.
func ExampleRun_subtreeSize() {
	tr, _ := tree.New(4, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}})
	sizes, err := aggregate.SubtreeSize(tr, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sizes[1:])

	// Output:
	// [4 3 2 1]
}

// ExampleIndependentSet picks the leaves of a star.
func ExampleIndependentSet() {
	tr, _ := tree.New(4, []tree.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}})
	res, err := aggregate.IndependentSet(tr, 1, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Value, res.Chosen())

	// Output:
	// 3 [2 3 4]
}

// ExampleDiameter reports the longest path of a caterpillar-like tree.
func ExampleDiameter() {
	tr, _ := tree.New(6, []tree.Edge{
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
		{U: 2, V: 5}, {U: 5, V: 6},
	})
	ps, err := aggregate.Diameter(tr, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ps.Best)

	// Output:
	// 4
}
