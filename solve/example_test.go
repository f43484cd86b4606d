package solve_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvtree/solve"
)

// ExampleRun decodes a star and prints the distance sums.
func ExampleRun() {
	in, err := solve.Decode(strings.NewReader("4\n1 2\n1 3\n1 4\n"), solve.SumOfDistances)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rep, err := solve.Run(context.Background(), solve.SumOfDistances, in, solve.WithLogger(logger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = rep.WriteTo(os.Stdout)

	// Output:
	// Sum of distances from node 1: 3
	// Sum of distances from node 2: 5
	// Sum of distances from node 3: 5
	// Sum of distances from node 4: 5
}
