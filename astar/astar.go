package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Engine owns one grid and runs one search over it.
// An Engine is not safe for concurrent use and cannot be reset; build a new
// one for every search.
type Engine struct {
	grid     *gridgraph.Grid
	start    gridgraph.Position
	goal     gridgraph.Position
	startIdx int
	goalIdx  int
	hvCost   int
	diagCost int
	diagonal bool
	hooks    Hooks

	open   *frontier
	closed []bool

	state    State
	expanded int
	path     []gridgraph.Position
}

// New builds an Engine for a rows×cols grid from DefaultConfig and the given
// options. See Config.Build for the errors it may return.
func New(rows, cols int, opts ...Option) (*Engine, error) {
	cfg := DefaultConfig(rows, cols)
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.Build()
}

// Build validates c and materializes the grid and engine.
//
// Validation order (first failure wins):
//  1. Rows, Cols > 0                         (ErrEmptyGrid).
//  2. Start set and inside the grid          (ErrInvalidPosition, "start").
//  3. Goal set and inside the grid           (ErrInvalidPosition, "goal").
//  4. HVCost, DiagonalCost in [0, MaxCost]   (ErrInvalidCost).
//  5. Obstacle entries well formed, in range (ErrInvalidObstacles).
//
// Zero costs resolve to DefaultCost. On error nothing is allocated.
//
// Complexity: O(R×C + K) time and O(R×C) memory.
func (c Config) Build() (*Engine, error) {
	// 1) Shape.
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("astar: %w: got %dx%d", ErrEmptyGrid, c.Rows, c.Cols)
	}

	// 2-3) Endpoints.
	if err := c.checkEndpoint("start", c.Start); err != nil {
		return nil, err
	}
	if err := c.checkEndpoint("goal", c.Goal); err != nil {
		return nil, err
	}

	// 4) Costs.
	hv, diag := c.HVCost, c.DiagonalCost
	if hv < 0 || diag < 0 {
		return nil, fmt.Errorf("%w: hv=%d diagonal=%d must not be negative", ErrInvalidCost, hv, diag)
	}
	if limit := MaxCost(c.Rows, c.Cols); hv > limit || diag > limit {
		return nil, fmt.Errorf("%w: hv=%d diagonal=%d above %d for a %dx%d grid", ErrInvalidCost, hv, diag, limit, c.Rows, c.Cols)
	}
	if hv == 0 {
		hv = DefaultCost
	}
	if diag == 0 {
		diag = DefaultCost
	}

	// 5) Obstacles: shape errors recorded by options, then bounds in NewGrid.
	if c.err != nil {
		return nil, fmt.Errorf("astar: %w", c.err)
	}
	grid, err := gridgraph.NewGrid(c.Rows, c.Cols, *c.Goal, c.Obstacles)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	return &Engine{
		grid:     grid,
		start:    *c.Start,
		goal:     *c.Goal,
		startIdx: grid.Index(*c.Start),
		goalIdx:  grid.Index(*c.Goal),
		hvCost:   hv,
		diagCost: diag,
		diagonal: c.Diagonal,
		hooks:    c.Hooks,
		open:     newFrontier(grid.Len()),
		closed:   make([]bool, grid.Len()),
		state:    Ready,
	}, nil
}

func (c Config) checkEndpoint(name string, p *gridgraph.Position) error {
	if p == nil {
		return fmt.Errorf("astar: %w: %s position not set", ErrInvalidPosition, name)
	}
	if p.Row < 0 || p.Row >= c.Rows || p.Col < 0 || p.Col >= c.Cols {
		return fmt.Errorf("astar: %w: %s %s outside %dx%d grid", ErrInvalidPosition, name, *p, c.Rows, c.Cols)
	}

	return nil
}

// Start returns the configured start cell.
func (e *Engine) Start() gridgraph.Position { return e.start }

// Goal returns the configured goal cell.
func (e *Engine) Goal() gridgraph.Position { return e.goal }

// HVCost returns the resolved horizontal/vertical step cost.
func (e *Engine) HVCost() int { return e.hvCost }

// DiagonalCost returns the resolved diagonal step cost.
func (e *Engine) DiagonalCost() int { return e.diagCost }

// DiagonalMoves reports whether diagonal steps are allowed.
func (e *Engine) DiagonalMoves() bool { return e.diagonal }

// Grid returns the grid the engine searches. Its nodes reflect the search
// progress so far.
func (e *Engine) Grid() *gridgraph.Grid { return e.grid }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Expanded returns how many cells have been closed so far.
func (e *Engine) Expanded() int { return e.expanded }

// Cost returns the accumulated cost of the found path, or -1 if the search
// has not finished with Found.
func (e *Engine) Cost() int {
	if e.state != Found {
		return -1
	}
	return e.grid.Node(e.goalIdx).G
}

// Path returns a copy of the result path: start..goal inclusive when Found,
// empty when Exhausted, nil while the search has not terminated.
func (e *Engine) Path() []gridgraph.Position {
	if !e.state.Terminal() {
		return nil
	}
	out := make([]gridgraph.Position, len(e.path))
	copy(out, e.path)

	return out
}

// Search runs the engine to a terminal state and returns the path from start
// to goal inclusive, or an empty slice if the goal is unreachable.
// Unreachability is a normal outcome, not an error. Calling Search again
// returns the same result without searching again.
//
// Complexity: O(N log N) time, O(N) memory (N = Rows×Cols).
func (e *Engine) Search() []gridgraph.Position {
	for !e.Step().Terminal() {
	}

	return e.Path()
}

// Step advances the search by one expansion and returns the resulting state.
//
// The first call seeds the frontier with the start cell (G=0, F=H). Each call
// then extracts the open cell with the lowest F (earliest inserted on ties),
// closes it, and either finishes with Found if it is the goal or relaxes its
// neighbors. An empty frontier finishes with Exhausted. Once terminal, Step
// is a no-op.
func (e *Engine) Step() State {
	switch e.state {
	case Found, Exhausted:
		return e.state
	case Ready:
		e.seed()
		if e.state.Terminal() {
			return e.state
		}
	}

	// 1) Nothing left to explore: the goal is unreachable.
	if e.open.Len() == 0 {
		e.finish(Exhausted)
		return e.state
	}

	// 2) Extract the cheapest open cell and close it.
	cur := e.open.popMin()
	e.closed[cur] = true
	e.expanded++
	node := e.grid.Node(cur)
	if e.hooks.OnExpand != nil {
		e.hooks.OnExpand(node.Pos, node.G)
	}

	// 3) Goal check.
	if cur == e.goalIdx {
		e.finish(Found)
		return e.state
	}

	// 4) Relax neighbors.
	e.expand(cur)

	return e.state
}

// seed moves Ready → Running by opening the start cell. A blocked start is
// never opened, so the search ends Exhausted right away.
func (e *Engine) seed() {
	e.state = Running
	start := e.grid.Node(e.startIdx)
	if start.Blocked {
		e.finish(Exhausted)
		return
	}
	start.SetCost(gridgraph.NoParent, 0)
	e.open.push(e.startIdx, start.F)
	if e.hooks.OnEnqueue != nil {
		e.hooks.OnEnqueue(start.Pos, start.G, start.F)
	}
}

// expand examines every neighbor of cur in the grid's fixed order.
// Blocked and closed cells are skipped. A cell not yet open is opened with
// cur as parent; an open cell is re-parented and re-prioritized only when the
// new G is strictly smaller.
func (e *Engine) expand(cur int) {
	g0 := e.grid.Node(cur).G
	e.grid.Neighbors(cur, e.diagonal, func(nbr int, diag bool) {
		n := e.grid.Node(nbr)
		if n.Blocked || e.closed[nbr] {
			return
		}

		step := e.hvCost
		if diag {
			step = e.diagCost
		}
		g := g0 + step

		if !e.open.contains(nbr) {
			n.SetCost(cur, g)
			e.open.push(nbr, n.F)
			if e.hooks.OnEnqueue != nil {
				e.hooks.OnEnqueue(n.Pos, n.G, n.F)
			}
			return
		}

		if g < n.G {
			old := n.G
			n.SetCost(cur, g)
			e.open.update(nbr, n.F)
			if e.hooks.OnRelax != nil {
				e.hooks.OnRelax(n.Pos, old, g)
			}
		}
	})
}

// finish records a terminal state, builds the result path and fires OnFinish.
func (e *Engine) finish(s State) {
	e.state = s
	if s == Found {
		e.path = e.reconstruct(e.goalIdx)
	} else {
		e.path = []gridgraph.Position{}
	}
	if e.hooks.OnFinish != nil {
		e.hooks.OnFinish(s, e.Path())
	}
}

// reconstruct follows Parent indices from idx back to the start and returns
// the positions in start → idx order.
func (e *Engine) reconstruct(idx int) []gridgraph.Position {
	var rev []gridgraph.Position
	for at := idx; at != gridgraph.NoParent; at = e.grid.Node(at).Parent {
		rev = append(rev, e.grid.Position(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
