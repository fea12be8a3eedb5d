package gridgraph

import "fmt"

// pairWidth is the number of coordinates in one obstacle entry.
const pairWidth = 2

// ParseObstacles converts an array-of-pairs obstacle list, as found in
// fixtures and hand-written configs ({{row, col}, ...}), into positions.
// Every entry must have exactly two elements; otherwise ErrInvalidObstacles
// is returned naming the first bad entry. Bounds are checked later, by
// NewGrid, once the grid dimensions are known.
// Complexity: O(K).
func ParseObstacles(raw [][]int) ([]Position, error) {
	out := make([]Position, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != pairWidth {
			return nil, fmt.Errorf("%w: entry %d has %d coordinates, want %d", ErrInvalidObstacles, i, len(pair), pairWidth)
		}
		out = append(out, Position{Row: pair[0], Col: pair[1]})
	}

	return out, nil
}
