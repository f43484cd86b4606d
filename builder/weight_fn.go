package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces one weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(*rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [lo, hi]. Panics if hi < lo.
// Without an RNG it yields lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
