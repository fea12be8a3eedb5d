package gridgraph

import (
	"fmt"
	"strings"
)

// neighborOffsets lists (dRow, dCol) in enumeration order: upper row, middle
// row, lower row, each left to right. diagonalOffset marks the corner moves.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var diagonalOffset = [8]bool{
	true, false, true,
	false, false,
	true, false, true,
}

// Grid is the arena of Nodes for one search. Its shape never changes after
// NewGrid; node cost and parent fields are mutated in place by the search
// that owns it. A Grid must not be shared between concurrent searches.
type Grid struct {
	rows, cols int
	goal       Position
	nodes      []Node
}

// NewGrid allocates a rows×cols grid, computes every cell's Manhattan
// distance to goal and marks the given obstacle cells as blocked.
//
// Returns ErrEmptyGrid if rows or cols is not positive, ErrInvalidPosition
// if goal is outside the grid, and ErrInvalidObstacles if the list holds
// more entries than the grid has rows, the grid is narrower than one
// {row, col} pair, or any entry is out of range.
// Duplicate obstacles are accepted. On error no grid is returned.
//
// Complexity: O(R×C + K) time, O(R×C) memory.
func NewGrid(rows, cols int, goal Position, obstacles []Position) (*Grid, error) {
	// 1) Shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, goal: goal}

	// 2) Goal must be a real cell; the heuristic is measured against it.
	if !g.InBounds(goal.Row, goal.Col) {
		return nil, fmt.Errorf("%w: goal %s outside %dx%d grid", ErrInvalidPosition, goal, rows, cols)
	}

	// 3) Obstacles are validated in full before anything is allocated.
	if err := g.validateObstacles(obstacles); err != nil {
		return nil, err
	}

	// 4) Materialize one node per cell.
	g.nodes = make([]Node, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{Row: r, Col: c}
			g.nodes[g.Index(p)] = Node{
				Pos:    p,
				H:      Manhattan(p, goal),
				Parent: NoParent,
			}
		}
	}
	for _, o := range obstacles {
		g.nodes[g.Index(o)].Blocked = true
	}

	return g, nil
}

// validateObstacles checks the list as a K×2 table against the grid: at most
// Rows() entries, each {row, col} pair no wider than Cols(), and every entry
// in range.
func (g *Grid) validateObstacles(obstacles []Position) error {
	if len(obstacles) == 0 {
		return nil
	}
	if len(obstacles) > g.rows {
		return fmt.Errorf("%w: %d entries exceed %d rows", ErrInvalidObstacles, len(obstacles), g.rows)
	}
	if pairWidth > g.cols {
		return fmt.Errorf("%w: pair width %d exceeds %d cols", ErrInvalidObstacles, pairWidth, g.cols)
	}
	for i, o := range obstacles {
		if !g.InBounds(o.Row, o.Col) {
			return fmt.Errorf("%w: entry %d %s outside %dx%d grid", ErrInvalidObstacles, i, o, g.rows, g.cols)
		}
	}

	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells, Rows()*Cols().
func (g *Grid) Len() int { return len(g.nodes) }

// Goal returns the position the heuristic was computed against.
func (g *Grid) Goal() Position { return g.goal }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps p to its row-major arena index. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts an arena index back to its coordinates.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Node returns the node stored at arena index idx.
func (g *Grid) Node(idx int) *Node {
	return &g.nodes[idx]
}

// At returns the node at p, or nil if p is outside the grid.
func (g *Grid) At(p Position) *Node {
	if !g.InBounds(p.Row, p.Col) {
		return nil
	}
	return &g.nodes[g.Index(p)]
}

// Blocked reports whether p is an obstacle. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(p Position) bool {
	n := g.At(p)
	return n == nil || n.Blocked
}

// Neighbors calls fn for every in-bounds cell adjacent to idx, in a fixed
// order: upper row, middle row, lower row, each left to right. Corner cells
// are only visited when diagonal is true; diag tells fn which kind of move
// produced nbr. Blocked cells are reported too; filtering is the caller's job.
//
// Complexity: O(1) (at most 8 calls).
func (g *Grid) Neighbors(idx int, diagonal bool, fn func(nbr int, diag bool)) {
	r, c := idx/g.cols, idx%g.cols
	for i, d := range neighborOffsets {
		if diagonalOffset[i] && !diagonal {
			continue
		}
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		fn(nr*g.cols+nc, diagonalOffset[i])
	}
}

// Render draws the grid as text, one line per row: '#' for obstacles,
// 'S' and 'G' for the first and last cell of path, '*' for the rest of
// path and '.' for free cells. A nil or empty path draws the bare grid.
// Complexity: O(R×C + len(path)).
func (g *Grid) Render(path []Position) string {
	marks := make(map[Position]byte, len(path))
	for i, p := range path {
		switch i {
		case 0:
			marks[p] = 'S'
		case len(path) - 1:
			marks[p] = 'G'
		default:
			marks[p] = '*'
		}
	}

	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			if m, ok := marks[p]; ok {
				sb.WriteByte(m)
				continue
			}
			if g.nodes[g.Index(p)].Blocked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
