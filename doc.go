// Package gridpath finds minimum-cost paths on static 2D grids with A*.
//
// What is gridpath?
//
//	A small, dependency-light library split into three subpackages:
//		• gridgraph: the cell arena (positions, nodes, obstacles, neighbor order)
//		• astar    : configuration, frontier/visited sets and the search loop
//		• observe  : slog logging, Prometheus metrics, OpenTelemetry spans
//
// Why choose gridpath?
//
//   - Deterministic: fixed neighbor order and FIFO tie-breaking give the same
//     path for the same configuration, every time.
//   - Fail early: every configuration error is reported by Build, before a
//     grid is allocated.
//   - No hidden work: a search is one synchronous call, no goroutines, no I/O.
//
// Quick ASCII example (S = start, G = goal, # = obstacle, * = path):
//
//	S#..
//	*#..
//	***G
//
//	go get github.com/katalvlaran/gridpath/astar
package gridpath
