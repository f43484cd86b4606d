package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// DefaultCheckEvery is the default cancellation polling period, in visits.
const DefaultCheckEvery = 1024

var (
	// ErrTreeNil is returned when a nil *tree.Tree is passed.
	ErrTreeNil = errors.New("traverse: tree is nil")

	// ErrRootNotFound indicates the requested root is not a node of the tree.
	ErrRootNotFound = errors.New("traverse: root not found")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrMalformedTree is returned when a walk reaches more or fewer than n
	// nodes, which only happens for cyclic or disconnected input.
	ErrMalformedTree = errors.New("traverse: input is not a tree")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the tunables of PostOrder and LevelOrder.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a node is first reached (pre-order).
	OnVisit func(v Visit) error

	// OnExit is invoked once all descendants of a node are finished.
	// LevelOrder never calls it.
	OnExit func(v Visit) error

	// CheckEvery is the number of visits between cancellation polls.
	CheckEvery int

	err error
}

// DefaultOptions returns Options with a background context, no hooks and
// DefaultCheckEvery.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		CheckEvery: DefaultCheckEvery,
	}
}

// WithContext sets the context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v Visit) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v Visit) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithCheckEvery sets the cancellation polling period; k must be positive.
func WithCheckEvery(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: CheckEvery must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.CheckEvery = k
	}
}

// Visit is one entry of a traversal order.
type Visit struct {
	Node   int
	Parent int // tree.NoParent for the root
	Depth  int // edges from the root
}

// Result is the outcome of a traversal rooted at Root.
type Result struct {
	Root int

	// Order lists every node once: children before parents for PostOrder,
	// parents before children for LevelOrder.
	Order []Visit

	// Parent and Depth are indexed by node id; index 0 is unused.
	Parent []int
	Depth  []int

	t *tree.Tree
}

// Children returns the neighbours of u other than its parent, in adjacency order.
func (r *Result) Children(u int) []int {
	nbs := r.t.Neighbors(u)
	p := r.Parent[u]
	if p == tree.NoParent {
		return nbs
	}
	out := make([]int, 0, len(nbs)-1)
	for _, v := range nbs {
		if v != p {
			out = append(out, v)
		}
	}
	return out
}

// Tree returns the tree the result was computed on.
func (r *Result) Tree() *tree.Tree { return r.t }

func resolve(t *tree.Tree, root int, opts []Option) (Options, error) {
	if t == nil {
		return Options{}, ErrTreeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if !t.HasNode(root) {
		return o, fmt.Errorf("%w: %d not in [1,%d]", ErrRootNotFound, root, t.N())
	}
	return o, nil
}

func newResult(t *tree.Tree, root int) *Result {
	n := t.N()
	return &Result{
		Root:   root,
		Order:  make([]Visit, 0, n),
		Parent: make([]int, n+1),
		Depth:  make([]int, n+1),
		t:      t,
	}
}

func checkCount(res *Result) error {
	if len(res.Order) != res.t.N() {
		return fmt.Errorf("%w: reached %d of %d nodes", ErrMalformedTree, len(res.Order), res.t.N())
	}
	return nil
}

func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
