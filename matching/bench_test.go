package matching_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/matching"
)

func BenchmarkCompute_Path100k(b *testing.B) {
	tr := build(b, builder.Path(100000))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.Compute(ctx, tr, 1)
	}
}
