package reroot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

var (
	// ErrSeedLength indicates a seed slice whose length is not n+1.
	ErrSeedLength = errors.New("reroot: seed length mismatch")

	// ErrSeedMismatch indicates seeds that were not computed rooted at the
	// given root (size(root) != n).
	ErrSeedMismatch = errors.New("reroot: seed does not match root")
)

// Eccentricity holds the distance from every node to its farthest node.
type Eccentricity struct {
	Root int

	// Ecc is indexed by node id; index 0 is unused.
	Ecc []int64
}

// Radius is the smallest eccentricity, or 0 when Ecc holds no nodes.
func (e *Eccentricity) Radius() int64 {
	if len(e.Ecc) < 2 {
		return 0
	}
	r := e.Ecc[1]
	for _, x := range e.Ecc[2:] {
		r = min(r, x)
	}
	return r
}

// Diameter is the largest eccentricity.
func (e *Eccentricity) Diameter() int64 {
	var d int64
	if len(e.Ecc) < 2 {
		return 0
	}
	for _, x := range e.Ecc[1:] {
		d = max(d, x)
	}
	return d
}

// Centers returns the nodes of minimum eccentricity in increasing id order.
// A tree has one or two centers; an empty Eccentricity has none.
func (e *Eccentricity) Centers() []int {
	if len(e.Ecc) < 2 {
		return nil
	}
	r := e.Radius()
	var out []int
	for u := 1; u < len(e.Ecc); u++ {
		if e.Ecc[u] == r {
			out = append(out, u)
		}
	}
	return out
}

func checkSeed(t *tree.Tree, name string, s []int64) error {
	if len(s) != t.N()+1 {
		return fmt.Errorf("%w: %s has %d entries, want n+1=%d", ErrSeedLength, name, len(s), t.N()+1)
	}
	return nil
}
