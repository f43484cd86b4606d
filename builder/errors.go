package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor or option was
// used without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the produced edges were rejected by tree.New.
var ErrConstructFailed = errors.New("builder: construction failed")
