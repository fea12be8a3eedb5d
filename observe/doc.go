// Package observe wraps astar searches with structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// The search loop itself stays free of I/O: a Runner only looks at an
// Engine before and after Engine.Search, and LogHooks turns the engine's
// per-cell hooks into Debug log records for step-level diagnostics.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	r := observe.NewRunner(
//	    observe.WithLogger(slog.Default()),
//	    observe.WithMetrics(observe.NewMetrics(reg)),
//	    observe.WithTracer(otel.Tracer("gridpath")),
//	)
//	e, _ := astar.New(6, 7, astar.WithStart(2, 1), astar.WithGoal(2, 5))
//	path := r.Run(ctx, e)
//
// Metrics exposed (namespace "gridpath"):
//
//   - searches_total{outcome}:  finished searches by terminal state.
//   - expanded_nodes:           histogram of cells closed per search.
//   - path_length:              histogram of cells per found path.
//   - search_duration_seconds:  histogram of wall time per search.
package observe
