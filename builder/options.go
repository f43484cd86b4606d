package builder

import "math/rand"

// BuilderOption customizes a constructor run by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the generator for edge weights (and for NodeValues).
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithShuffledLabels relabels nodes with a uniformly random permutation of
// 1..n so that node 1 is no longer the structural root. Requires an RNG.
func WithShuffledLabels() BuilderOption {
	return func(c *builderConfig) { c.shuffle = true }
}
