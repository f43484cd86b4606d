package reroot_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/reroot"
)

func BenchmarkSumOfDistances_Path100k(b *testing.B) {
	tr := build(b, builder.Path(100000))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reroot.SumOfDistances(ctx, tr, 1)
	}
}
