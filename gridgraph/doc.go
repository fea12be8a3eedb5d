// Package gridgraph models a fixed-size 2D grid of cells as the search space
// for grid path-finding.
//
// What:
//
//   - Position is a (Row, Col) coordinate; two positions are the same cell
//     exactly when their coordinates match.
//   - Node is the per-cell record: coordinates, cost fields (G, H, F),
//     the obstacle flag and a Parent back-reference stored as an arena index.
//   - Grid owns one Node per cell in a row-major slice, precomputes each
//     cell's Manhattan distance to the goal and marks obstacle cells.
//   - Neighbors enumerates the 4 (or 8, with diagonals) adjacent cells in a
//     fixed order so that searches built on top are reproducible.
//   - Components groups free cells into connected regions, which answers
//     "is there any path at all" without running a cost search.
//
// Why:
//
//   - A grid-sized arena avoids pointer graphs: parents, frontier slots and
//     visited flags are all plain ints indexed by Index(p).
//   - Validation happens once in NewGrid; a Grid that exists is always
//     consistent with its dimensions, goal and obstacle list.
//
// Complexity:
//
//   - NewGrid:    O(R×C + K) time, O(R×C) memory (K = number of obstacles).
//   - Neighbors:  O(1) per call (at most 8 cells).
//   - Components: O(R×C×d) time, O(R×C) memory (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid:        rows or cols is not positive.
//   - ErrInvalidPosition:  the goal (or a queried endpoint) lies outside the grid.
//   - ErrInvalidObstacles: an obstacle entry is malformed or out of range, the
//     list has more entries than the grid has rows, or the grid has fewer
//     columns than a {row, col} pair is wide.
package gridgraph
