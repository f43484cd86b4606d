package solve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtree/aggregate"
	"github.com/katalvlaran/lvtree/matching"
	"github.com/katalvlaran/lvtree/reroot"
	"github.com/katalvlaran/lvtree/traverse"
	"github.com/katalvlaran/lvtree/tree"
)

const tracerName = "lvtree/solve"

// kinds maps the problems answered by a plain aggregation.
var kinds = map[Problem]aggregate.Kind{
	SubtreeSize:     aggregate.KindSize,
	SubtreeSum:      aggregate.KindSum,
	TreeDiameter:    aggregate.KindDiameter,
	LongestPath:     aggregate.KindLongestPath,
	LongestEdgePath: aggregate.KindWeightedDiameter,
	ColoringCount:   aggregate.KindColoringCount,
}

// perNode lists the problems whose report prints one line per node.
var perNode = map[Problem]bool{
	SubtreeSize: true,
	SubtreeSum:  true,
}

func resolve(opts []Option) runOptions {
	o := runOptions{
		root:    1,
		modulus: DefaultModulus,
		logger:  slog.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// loggerWithTrace adds the trace and span ids of ctx, if any, to logger.
func loggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
}

// Run solves one instance of p.
//
// Steps:
//  1. Validate the problem, the input and the node ceiling.
//  2. Build the tree (tree.New, strict when WithStrictValidation is set).
//  3. Dispatch to aggregate, matching or reroot.
//  4. Record span status, metrics and one log line.
func Run(ctx context.Context, p Problem, in *Input, opts ...Option) (rep *Report, err error) {
	o := resolve(opts)
	runID := uuid.NewString()

	ctx, span := o.tracer.Start(ctx, "solve.Run",
		trace.WithAttributes(
			attribute.String("problem", string(p)),
			attribute.String("run_id", runID),
		),
	)
	defer span.End()

	logger := loggerWithTrace(ctx, o.logger).With(
		slog.String("run_id", runID),
		slog.String("problem", string(p)),
	)

	start := time.Now()
	n := 0
	if in != nil {
		n = in.N
	}
	defer func() { o.metrics.observe(p, n, time.Since(start), err) }()

	fail := func(e error, msg string) (*Report, error) {
		span.RecordError(e)
		span.SetStatus(codes.Error, msg)
		logger.Error("solve failed", slog.Int("n", n), slog.String("error", e.Error()))
		return nil, e
	}

	if _, ok := catalogue[p]; !ok {
		return fail(fmt.Errorf("%w: %q", ErrUnknownProblem, p), "unknown problem")
	}
	if in == nil {
		return fail(ErrInputNil, "nil input")
	}
	if o.maxNodes > 0 && in.N > o.maxNodes {
		return fail(fmt.Errorf("%w: n=%d > %d", ErrTooLarge, in.N, o.maxNodes), "too large")
	}
	span.SetAttributes(attribute.Int("tree.n", in.N), attribute.Int("tree.root", o.root))

	var topts []tree.Option
	if o.strict {
		topts = append(topts, tree.WithStrictValidation())
	}
	span.AddEvent("building_tree")
	t, err := tree.New(in.N, in.Edges, topts...)
	if err != nil {
		return fail(err, "invalid tree")
	}

	walk := []traverse.Option{traverse.WithContext(ctx)}
	if o.checkEvery > 0 {
		walk = append(walk, traverse.WithCheckEvery(o.checkEvery))
	}

	rep = &Report{RunID: runID, Problem: p, N: in.N, Root: o.root}
	span.AddEvent("solving")
	if err = dispatch(ctx, p, t, in, o, walk, rep); err != nil {
		return fail(err, "solve failed")
	}
	rep.Duration = time.Since(start)

	span.SetAttributes(attribute.Int64("value", rep.Value))
	span.SetStatus(codes.Ok, "solved")
	logger.Info("solve complete",
		slog.Int("n", in.N),
		slog.Int64("value", rep.Value),
		slog.Duration("duration", rep.Duration),
	)
	return rep, nil
}

func dispatch(ctx context.Context, p Problem, t *tree.Tree, in *Input, o runOptions, walk []traverse.Option, rep *Report) error {
	root := o.root

	if kind, ok := kinds[p]; ok {
		s, err := aggregate.Aggregate(t, root, kind, aggregate.Payload{
			Values: in.Values,
			K:      in.K,
			Mod:    o.modulus,
		}, walk...)
		if err != nil {
			return err
		}
		rep.Value = s.Best
		if perNode[p] {
			rep.PerNode = s.PerNode
		}
		return nil
	}

	switch p {
	case MaxIndependentSet:
		res, err := aggregate.IndependentSet(t, root, in.Values, walk...)
		if err != nil {
			return err
		}
		rep.Value, rep.Chosen = res.Value, res.Chosen()

	case MinVertexCover:
		res, err := aggregate.VertexCover(t, root, nil, walk...)
		if err != nil {
			return err
		}
		rep.Value, rep.Chosen = res.Value, res.Chosen()

	case TreeColoring:
		res, err := aggregate.Coloring(t, root, in.Costs, walk...)
		if err != nil {
			return err
		}
		rep.Value, rep.Colors = res.Value, res.Assignment()

	case MaxMatching:
		res, err := matching.Compute(ctx, t, root, walk...)
		if err != nil {
			return err
		}
		rep.Value, rep.Matching = res.Size, res.Edges()

	case SumOfDistances:
		ans, err := reroot.SumOfDistances(ctx, t, root, walk...)
		if err != nil {
			return err
		}
		rep.PerNode = ans
		for _, x := range ans {
			rep.Value += x
		}

	case Eccentricity:
		e, err := reroot.Eccentricities(ctx, t, root, walk...)
		if err != nil {
			return err
		}
		rep.PerNode, rep.Value, rep.Centers = e.Ecc, e.Radius(), e.Centers()
	}
	return nil
}
