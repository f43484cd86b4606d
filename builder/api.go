package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Constructor produces the node count and edge list of one topology.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
type Constructor func(cfg builderConfig) (n int, edges []tree.Edge, err error)

// Edges resolves bopts, runs con and applies edge weights and relabelling.
// The returned edges always describe a tree over 1..n.
func Edges(con Constructor, bopts ...BuilderOption) (int, []tree.Edge, error) {
	if con == nil {
		return 0, nil, fmt.Errorf("Edges: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	n, edges, err := con(cfg)
	if err != nil {
		return 0, nil, err
	}

	if cfg.weightFn != nil {
		for i := range edges {
			edges[i].Weight = cfg.weightFn(cfg.rng)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return 0, nil, fmt.Errorf("WithShuffledLabels: %w", ErrNeedRandSource)
		}
		// perm[0] stays 0 so labels remain in 1..n.
		perm := make([]int, n+1)
		for i, p := range cfg.rng.Perm(n) {
			perm[i+1] = p + 1
		}
		for i := range edges {
			edges[i].U, edges[i].V = perm[edges[i].U], perm[edges[i].V]
		}
	}

	return n, edges, nil
}

// BuildTree runs con under bopts and builds the resulting tree.Tree with topts.
// A rejection by tree.New is wrapped with ErrConstructFailed.
func BuildTree(topts []tree.Option, bopts []BuilderOption, con Constructor) (*tree.Tree, error) {
	n, edges, err := Edges(con, bopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: %w", err)
	}
	t, err := tree.New(n, edges, topts...)
	if err != nil {
		return nil, fmt.Errorf("BuildTree: %w: %w", ErrConstructFailed, err)
	}
	return t, nil
}

// NodeValues draws n values (indexed 1..n, index 0 is 0) from the weight
// function of bopts, or returns all ones when none is configured.
func NodeValues(n int, bopts ...BuilderOption) []int64 {
	cfg := newBuilderConfig(bopts...)
	out := make([]int64, n+1)
	for u := 1; u <= n; u++ {
		if cfg.weightFn == nil {
			out[u] = 1
			continue
		}
		out[u] = cfg.weightFn(cfg.rng)
	}
	return out
}

// ColorCosts draws a pair of colour costs per node from the weight function
// of bopts, or returns {0, 1} for every node when none is configured.
func ColorCosts(n int, bopts ...BuilderOption) [][2]int64 {
	cfg := newBuilderConfig(bopts...)
	out := make([][2]int64, n+1)
	for u := 1; u <= n; u++ {
		if cfg.weightFn == nil {
			out[u] = [2]int64{0, 1}
			continue
		}
		out[u] = [2]int64{cfg.weightFn(cfg.rng), cfg.weightFn(cfg.rng)}
	}
	return out
}
