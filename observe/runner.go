package observe

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// SpanName is the name of the span a Runner opens around each search.
const SpanName = "gridpath.Search"

// Runner runs engines to completion and reports each run to a logger,
// optional Prometheus metrics and an OpenTelemetry tracer.
type Runner struct {
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. nil keeps the default, which discards output.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics enables metric collection.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer sets the tracer. nil keeps the default, otel.Tracer("gridpath").
func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRunner returns a Runner with a discarding logger, no metrics and the
// global "gridpath" tracer, then applies opts.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer("gridpath"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run calls e.Search inside a span, then logs and records the outcome.
// The returned path is exactly what e.Search returned. ctx is only used to
// parent the span and carry it to the log handler; the search is not
// cancellable.
func (r *Runner) Run(ctx context.Context, e *astar.Engine) []gridgraph.Position {
	g := e.Grid()
	ctx, span := r.tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.Int("grid.rows", g.Rows()),
		attribute.Int("grid.cols", g.Cols()),
		attribute.String("grid.start", e.Start().String()),
		attribute.String("grid.goal", e.Goal().String()),
		attribute.Bool("grid.diagonal", e.DiagonalMoves()),
		attribute.Int("cost.hv", e.HVCost()),
		attribute.Int("cost.diagonal", e.DiagonalCost()),
	))
	defer span.End()

	began := r.now()
	path := e.Search()
	elapsed := r.now().Sub(began)
	state := e.State()

	span.SetAttributes(
		attribute.String("search.outcome", state.String()),
		attribute.Int("search.expanded", e.Expanded()),
		attribute.Int("path.length", len(path)),
		attribute.Int("path.cost", e.Cost()),
	)
	if state == astar.Found {
		span.SetStatus(codes.Ok, "path found")
	} else {
		span.AddEvent("unreachable")
	}

	if r.metrics != nil {
		r.metrics.Observe(state, e.Expanded(), len(path), elapsed)
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "grid search finished",
		slog.String("start", e.Start().String()),
		slog.String("goal", e.Goal().String()),
		slog.String("state", state.String()),
		slog.Int("expanded", e.Expanded()),
		slog.Int("path_len", len(path)),
		slog.Int("cost", e.Cost()),
		slog.Duration("duration", elapsed),
	)

	return path
}

// LogHooks returns astar options that log every enqueue, expansion and
// relaxation at Debug level. Pass them to astar.New alongside the grid
// options. Output volume is proportional to the number of cells touched.
func LogHooks(l *slog.Logger) []astar.Option {
	ctx := context.Background()
	return []astar.Option{
		astar.WithOnEnqueue(func(p gridgraph.Position, g, f int) {
			l.LogAttrs(ctx, slog.LevelDebug, "enqueue",
				slog.String("pos", p.String()), slog.Int("g", g), slog.Int("f", f))
		}),
		astar.WithOnExpand(func(p gridgraph.Position, g int) {
			l.LogAttrs(ctx, slog.LevelDebug, "expand",
				slog.String("pos", p.String()), slog.Int("g", g))
		}),
		astar.WithOnRelax(func(p gridgraph.Position, oldG, newG int) {
			l.LogAttrs(ctx, slog.LevelDebug, "relax",
				slog.String("pos", p.String()), slog.Int("old_g", oldG), slog.Int("new_g", newG))
		}),
	}
}
