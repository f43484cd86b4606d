package solve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvtree/tree"
)

// allocHint caps preallocation from the declared node count, so a bogus n
// fails on truncated input instead of on a huge allocation.
const allocHint = 1 << 16

// tokens reads whitespace-separated integers and remembers how many it
// consumed, for error messages.
type tokens struct {
	sc   *bufio.Scanner
	read int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (tk *tokens) next(what string) (int64, error) {
	if !tk.sc.Scan() {
		if err := tk.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %w", ErrDecode, what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input at token %d (%s)", ErrDecode, tk.read+1, what)
	}
	tk.read++
	v, err := strconv.ParseInt(tk.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s) %q: %w", ErrDecode, tk.read, what, tk.sc.Text(), err)
	}
	return v, nil
}

func (tk *tokens) nextInt(what string) (int, error) {
	v, err := tk.next(what)
	return int(v), err
}

// Decode reads one instance of p from r. Node ids and the edge count are not
// validated here; tree.New does that in Run. Of opts only WithMaxNodes
// applies: it rejects a large n before anything is allocated.
func Decode(r io.Reader, p Problem, opts ...Option) (*Input, error) {
	kind, ok := catalogue[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProblem, p)
	}
	tk := newTokens(r)

	n, err := tk.nextInt("n")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d, need at least one node", ErrDecode, n)
	}
	if o := resolve(opts); o.maxNodes > 0 && n > o.maxNodes {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, o.maxNodes)
	}
	in := &Input{N: n}
	hint := min(n, allocHint)

	switch kind {
	case colorCount:
		if in.K, err = tk.next("k"); err != nil {
			return nil, err
		}
	case nodeValues:
		in.Values = make([]int64, 1, hint+1)
		for u := 1; u <= n; u++ {
			v, err := tk.next(fmt.Sprintf("value of node %d", u))
			if err != nil {
				return nil, err
			}
			in.Values = append(in.Values, v)
		}
	case colorCosts:
		in.Costs = make([][2]int64, 1, hint+1)
		for u := 1; u <= n; u++ {
			var cost [2]int64
			for c := range cost {
				if cost[c], err = tk.next(fmt.Sprintf("cost %d of node %d", c, u)); err != nil {
					return nil, err
				}
			}
			in.Costs = append(in.Costs, cost)
		}
	}

	in.Edges = make([]tree.Edge, 0, hint)
	for i := 1; i < n; i++ {
		var e tree.Edge
		if e.U, err = tk.nextInt("edge endpoint"); err != nil {
			return nil, err
		}
		if e.V, err = tk.nextInt("edge endpoint"); err != nil {
			return nil, err
		}
		if kind == edgeWeights {
			if e.Weight, err = tk.next("edge weight"); err != nil {
				return nil, err
			}
		}
		in.Edges = append(in.Edges, e)
	}
	return in, nil
}
