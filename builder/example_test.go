package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/builder"
)

// ExampleBuildTree builds a caterpillar with a 3-node spine and two legs per
// spine node, then reports its size and leaves.
func ExampleBuildTree() {
	tr, err := builder.BuildTree(nil, nil, builder.Caterpillar(3, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tr.N(), tr.Leaves())

	// Output:
	// 9 [4 5 6 7 8 9]
}
