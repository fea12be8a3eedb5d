// Package astar finds a minimum-cost path between two cells of a 2D grid
// using A* with Manhattan distance as the heuristic.
//
// Overview:
//
//   - Configure a grid (rows, cols), start and goal cells, step costs,
//     diagonal movement and obstacles, either through a Config struct or
//     through functional Options passed to New.
//   - Build validates everything up front and returns a ready Engine, or a
//     descriptive error; an invalid grid is never partially constructed.
//   - Engine.Search runs to completion and returns the path start..goal, or
//     an empty slice when the goal cannot be reached.
//   - Engine.Step advances one expansion at a time for visualizers and tests.
//
// Cost model:
//
//   - Straight (horizontal/vertical) and diagonal steps each have a flat,
//     positive integer cost; both default to DefaultCost (10).
//   - Diagonal movement is off unless WithDiagonalMoves is given.
//   - H(cell) = |goal.Row-row| + |goal.Col-col|, F = G + H.
//
// Determinism:
//
//   - Neighbors are visited upper row, middle row, lower row, each left to
//     right.
//   - Among open cells with equal F, the one inserted (or last
//     re-prioritized) earliest is expanded first.
//   - Two engines built from identical configurations return identical paths.
//
// Known limitation:
//
//   - Closed cells are never re-opened. When a low diagonal cost makes the
//     Manhattan heuristic inconsistent, the path found may cost more than the
//     optimum. This is intentional and reproducible.
//
// Complexity:
//
//   - Build:  O(R×C + K) time, O(R×C) memory.
//   - Search: O(N log N) time, O(N) memory, N = R×C.
//
// Errors (sentinel, use errors.Is):
//
//   - ErrEmptyGrid:        rows or cols not positive.
//   - ErrInvalidPosition:  start or goal unset or outside the grid.
//   - ErrInvalidCost:      negative step cost, or one above MaxCost.
//   - ErrInvalidObstacles: malformed or out-of-range obstacle entry, more
//     entries than rows, or a grid narrower than one {row, col} pair.
//
// Example usage:
//
//	e, err := astar.New(8, 5,
//	    astar.WithStart(2, 1),
//	    astar.WithGoal(6, 4),
//	    astar.WithDiagonalMoves(),
//	    astar.WithObstacleRows([][]int{{3, 2}, {3, 3}, {4, 2}, {5, 2}}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range e.Search() {
//	    fmt.Println(p)
//	}
package astar
