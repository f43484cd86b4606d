package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Edge-weight generator; nil leaves every edge at weight 0.
	weightFn WeightFn

	// Relabel nodes with a random permutation after construction.
	shuffle bool
}

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
