package aggregate

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

// Colorings is the outcome of CountColorings.
type Colorings struct {
	Root int

	// Ways[u] counts the proper colourings of u's subtree once u's own
	// colour is fixed, modulo Mod.
	Ways []int64

	// Total counts the proper k-colourings of the whole tree, modulo Mod.
	Total int64

	K, Mod int64
}

type countCombiner struct{ k, mod uint64 }

func (c countCombiner) Init(int) int64 { return int64(1 % c.mod) }

// Absorb multiplies in the k-1 colours left for the child times the child's ways.
func (c countCombiner) Absorb(_ int, acc int64, _ int, cs int64, _ int64) int64 {
	return int64(mulMod(uint64(acc), mulMod((c.k-1)%c.mod, uint64(cs), c.mod), c.mod))
}

func (countCombiner) Finish(_ int, acc int64) int64 { return acc }

// mulMod returns a·b mod m without intermediate overflow.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// CountColorings counts the colourings of t with k colours in which adjacent
// nodes differ. On a tree the answer is k·(k-1)^(n-1); the DP form also
// yields the per-subtree counts. Values are reduced modulo mod.
func CountColorings(t *tree.Tree, root int, k, mod int64, opts ...traverse.Option) (*Colorings, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadColorCount, k)
	}
	if mod < 1 {
		return nil, fmt.Errorf("%w: mod=%d", ErrBadModulus, mod)
	}
	c := countCombiner{k: uint64(k), mod: uint64(mod)}
	res, err := Run[int64](t, root, c, opts...)
	if err != nil {
		return nil, err
	}
	total := int64(mulMod(uint64(k)%c.mod, uint64(res.States[root]), c.mod))
	return &Colorings{Root: root, Ways: res.States, Total: total, K: k, Mod: mod}, nil
}
