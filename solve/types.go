package solve

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtree/tree"
)

var (
	// ErrUnknownProblem indicates a problem name outside the catalogue.
	ErrUnknownProblem = errors.New("solve: unknown problem")

	// ErrDecode indicates malformed or truncated input.
	ErrDecode = errors.New("solve: decode failed")

	// ErrTooLarge indicates an input above the configured node ceiling.
	ErrTooLarge = errors.New("solve: tree exceeds node limit")

	// ErrInputNil indicates a nil *Input.
	ErrInputNil = errors.New("solve: input is nil")
)

// Problem names one solver of the catalogue.
type Problem string

// Catalogue.
const (
	SubtreeSize       Problem = "subtree_size"
	SubtreeSum        Problem = "subtree_sum"
	TreeDiameter      Problem = "tree_diameter"
	LongestPath       Problem = "longest_path"
	LongestEdgePath   Problem = "longest_edge_path"
	MaxIndependentSet Problem = "max_independent_set"
	MinVertexCover    Problem = "min_vertex_cover"
	MaxMatching       Problem = "max_matching"
	TreeColoring      Problem = "tree_coloring"
	ColoringCount     Problem = "coloring_count"
	SumOfDistances    Problem = "sum_of_distances"
	Eccentricity      Problem = "eccentricity"
)

// payload describes what Decode reads besides n and the edges.
type payload int

const (
	noPayload payload = iota
	nodeValues
	colorCosts
	colorCount
	edgeWeights
)

var catalogue = map[Problem]payload{
	SubtreeSize:       noPayload,
	SubtreeSum:        nodeValues,
	TreeDiameter:      noPayload,
	LongestPath:       nodeValues,
	LongestEdgePath:   edgeWeights,
	MaxIndependentSet: nodeValues,
	MinVertexCover:    noPayload,
	MaxMatching:       noPayload,
	TreeColoring:      colorCosts,
	ColoringCount:     colorCount,
	SumOfDistances:    noPayload,
	Eccentricity:      noPayload,
}

// ParseProblem validates a problem name.
func ParseProblem(s string) (Problem, error) {
	p := Problem(s)
	if _, ok := catalogue[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProblem, s)
	}
	return p, nil
}

// Problems lists the catalogue in name order.
func Problems() []Problem {
	out := make([]Problem, 0, len(catalogue))
	for p := range catalogue {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Input is one decoded problem instance. Per-node slices have length n+1
// with index 0 unused.
type Input struct {
	N      int
	Edges  []tree.Edge
	Values []int64
	Costs  [][2]int64
	K      int64
}

// DefaultModulus reduces coloring counts.
const DefaultModulus int64 = 1_000_000_007

// Report is the outcome of Run.
type Report struct {
	RunID   string
	Problem Problem
	N       int
	Root    int

	// Value is the whole-tree answer (0 for purely per-node problems).
	Value int64

	// PerNode is indexed by node id for subtree_size, subtree_sum,
	// sum_of_distances and eccentricity; nil otherwise.
	PerNode []int64

	// Chosen is the optimal node set of max_independent_set and
	// min_vertex_cover.
	Chosen []int

	// Colors holds the optimal colour per node for tree_coloring.
	Colors []int

	// Matching holds the edges of max_matching.
	Matching []tree.Edge

	// Centers is set for eccentricity.
	Centers []int

	Duration time.Duration
}

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	root       int
	maxNodes   int
	checkEvery int
	modulus    int64
	strict     bool
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    *Metrics
}

// WithRoot selects the node every rooted pass starts from (default 1).
func WithRoot(r int) Option { return func(o *runOptions) { o.root = r } }

// WithMaxNodes rejects inputs with more than k nodes; k ≤ 0 disables the check.
func WithMaxNodes(k int) Option { return func(o *runOptions) { o.maxNodes = k } }

// WithCheckEvery sets the traversal cancellation polling period.
func WithCheckEvery(k int) Option { return func(o *runOptions) { o.checkEvery = k } }

// WithModulus sets the modulus for coloring_count (default DefaultModulus).
func WithModulus(m int64) Option { return func(o *runOptions) { o.modulus = m } }

// WithStrictValidation rejects cycles and duplicate edges before solving.
func WithStrictValidation() Option { return func(o *runOptions) { o.strict = true } }

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer sets the tracer; nil keeps the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *runOptions) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithMetrics records solve metrics on m.
func WithMetrics(m *Metrics) Option { return func(o *runOptions) { o.metrics = m } }
