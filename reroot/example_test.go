package reroot_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtree/reroot"
	"github.com/katalvlaran/lvtree/tree"
)

// ExampleSumOfDistances computes distance sums on a star with hub 1.
func ExampleSumOfDistances() {
	tr, _ := tree.New(6, []tree.Edge{
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5}, {U: 1, V: 6},
	})
	ans, err := reroot.SumOfDistances(context.Background(), tr, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ans[1:])

	// Output:
	// [5 9 9 9 9 9]
}

// ExampleEccentricities finds the centre of a path.
func ExampleEccentricities() {
	tr, _ := tree.New(5, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}})
	e, err := reroot.Eccentricities(context.Background(), tr, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(e.Ecc[1:], e.Radius(), e.Centers())

	// Output:
	// [4 3 2 3 4] 2 [3]
}
