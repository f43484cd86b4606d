package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/aggregate"
	"github.com/katalvlaran/lvtree/builder"
)

func BenchmarkDiameter_Random100k(b *testing.B) {
	tr := build(b, builder.Random(100000), builder.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = aggregate.Diameter(tr, 1)
	}
}

func BenchmarkIndependentSet_Path100k(b *testing.B) {
	tr := build(b, builder.Path(100000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = aggregate.IndependentSet(tr, 1, nil)
	}
}
