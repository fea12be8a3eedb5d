package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrInvalidPosition indicates a start or goal coordinate outside [0,rows)×[0,cols).
	ErrInvalidPosition = errors.New("gridgraph: position outside grid bounds")
	// ErrInvalidObstacles indicates a malformed or out-of-range obstacle list.
	ErrInvalidObstacles = errors.New("gridgraph: invalid obstacle list")
)
