// Command lvtree solves one tree problem read from a file or stdin.
//
//	lvtree -p tree_diameter -i tree.txt
//	lvtree -p sum_of_distances --root 3 --metrics-out lvtree.prom < tree.txt
//
// Configuration comes from -c (YAML), LVTREE_* variables and flags, in
// increasing precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/lvtree/config"
	"github.com/katalvlaran/lvtree/solve"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "lvtree:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	pf := pflag.NewFlagSet("lvtree", pflag.ContinueOnError)
	pf.SetOutput(stderr)

	var (
		problem, input, cfgPath, metricsOut string
		root                                int
		tracing                             bool
	)
	pf.StringVarP(&problem, "problem", "p", "", "problem to solve: "+problemList())
	pf.StringVarP(&input, "input", "i", "", "input file (default stdin)")
	pf.StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	pf.IntVar(&root, "root", 0, "root node for the rooted passes (overrides engine.root)")
	pf.StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	pf.BoolVar(&tracing, "trace", false, "print OpenTelemetry spans to stderr")
	if err := pf.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if pf.Changed("root") {
		cfg.Engine.Root = root
	}
	if pf.Changed("metrics-out") {
		cfg.Telemetry.MetricsOut = metricsOut
	}
	if pf.Changed("trace") {
		cfg.Telemetry.Tracing = tracing
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg, stderr)

	p, err := solve.ParseProblem(problem)
	if err != nil {
		return err
	}

	opts := []solve.Option{
		solve.WithLogger(logger),
		solve.WithRoot(cfg.Engine.Root),
		solve.WithMaxNodes(cfg.Engine.MaxNodes),
		solve.WithCheckEvery(cfg.Engine.CheckEvery),
	}

	if cfg.Telemetry.Tracing {
		tp, err := newTracerProvider(stderr)
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("tracer shutdown failed", slog.String("error", err.Error()))
			}
		}()
		opts = append(opts, solve.WithTracer(tp.Tracer("lvtree")))
	}

	var metrics *solve.Metrics
	if cfg.Telemetry.MetricsOut != "" {
		metrics = solve.NewMetrics()
		opts = append(opts, solve.WithMetrics(metrics))
	}

	r := stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	in, err := solve.Decode(r, p, opts...)
	if err != nil {
		return err
	}
	rep, runErr := solve.Run(ctx, p, in, opts...)

	if metrics != nil {
		if err := metrics.WriteToTextfile(cfg.Telemetry.MetricsOut); err != nil {
			logger.Warn("metrics dump failed", slog.String("path", cfg.Telemetry.MetricsOut), slog.String("error", err.Error()))
		}
	}
	if runErr != nil {
		return runErr
	}

	_, err = rep.WriteTo(stdout)
	return err
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	format := cfg.Log.Format
	if format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", "lvtree"))),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

func problemList() string {
	ps := solve.Problems()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
