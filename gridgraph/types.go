package gridgraph

import "fmt"

// NoParent marks a Node that has no predecessor (the start, or an
// undiscovered cell).
const NoParent = -1

// Position identifies a grid cell by row and column.
// Position values are comparable and may be used as map keys.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Complexity: O(1).
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Node is the record kept for every cell of a Grid.
//
// Pos and H are fixed when the grid is built. G, F and Parent are only
// meaningful once a search has discovered the cell; F is kept equal to G+H
// by SetCost. Parent is an index into the same Grid (NoParent for none) and
// never owns anything.
//
// Two Nodes describe the same logical cell iff their Pos fields are equal,
// whatever their cost fields say; see SameCell.
type Node struct {
	Pos     Position
	G       int
	H       int
	F       int
	Blocked bool
	Parent  int
}

// SetCost records a new best-known path to n: predecessor index parent and
// accumulated cost g. F is recomputed from g and the fixed H.
// Complexity: O(1).
func (n *Node) SetCost(parent, g int) {
	n.Parent = parent
	n.G = g
	n.F = g + n.H
}

// SameCell reports whether n and other refer to the same grid cell.
func (n *Node) SameCell(other *Node) bool {
	return n.Pos == other.Pos
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
