package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// DefaultCost is the step cost used for straight and diagonal moves when the
// caller does not set one. Integer costs scaled by 10 leave room for ratios
// such as 10:14 (≈ 1:√2) without floating point.
const DefaultCost = 10

// MaxCost returns the largest step cost Build accepts for a rows×cols grid.
// Below it, no path G plus heuristic can overflow int. It returns 0 for a
// non-positive shape.
func MaxCost(rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}

	return (math.MaxInt - rows - cols) / (rows * cols)
}

// Sentinel errors returned by Build and New. They are the gridgraph
// sentinels where the failure is about the grid itself, so errors.Is works
// against either package.
var (
	// ErrEmptyGrid indicates rows or cols is not positive.
	ErrEmptyGrid = gridgraph.ErrEmptyGrid

	// ErrInvalidPosition indicates the start or goal is unset or outside the
	// grid. The wrapped message names the endpoint.
	ErrInvalidPosition = gridgraph.ErrInvalidPosition

	// ErrInvalidObstacles indicates a malformed obstacle list or an obstacle
	// outside the grid.
	ErrInvalidObstacles = gridgraph.ErrInvalidObstacles

	// ErrInvalidCost indicates a negative straight or diagonal step cost, or
	// one above MaxCost for the grid.
	ErrInvalidCost = errors.New("astar: invalid step cost")
)

// State is the lifecycle stage of an Engine.
type State int

const (
	// Ready: built, frontier empty, nothing expanded yet.
	Ready State = iota
	// Running: the frontier is seeded and expansion is in progress.
	Running
	// Found: the goal was extracted from the frontier. Terminal.
	Found
	// Exhausted: the frontier emptied without reaching the goal. Terminal.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether s is Found or Exhausted.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted
}

// Hooks observe a search as it runs. Any nil hook is skipped.
// Hooks receive values, never node pointers; the path given to OnFinish is
// the caller's own copy.
type Hooks struct {
	// OnEnqueue is called when a cell first enters the frontier.
	OnEnqueue func(p gridgraph.Position, g, f int)

	// OnExpand is called when a cell is extracted from the frontier and closed.
	OnExpand func(p gridgraph.Position, g int)

	// OnRelax is called when a cheaper path to a frontier cell is found.
	OnRelax func(p gridgraph.Position, oldG, newG int)

	// OnFinish is called once, when the engine reaches a terminal state.
	OnFinish func(s State, path []gridgraph.Position)
}

// Config holds everything needed to build an Engine. It can be filled in
// field by field or through functional Options; nothing is validated until
// Build.
//
// Rows, Cols       : grid dimensions, both must be > 0.
// Start, Goal      : endpoints; nil means "not set" and fails Build.
// HVCost           : cost of a horizontal or vertical step; 0 means DefaultCost.
// DiagonalCost     : cost of a diagonal step; 0 means DefaultCost.
// Diagonal         : allow diagonal moves (default false).
// Obstacles        : blocked cells (default none).
// Hooks            : optional observers.
type Config struct {
	Rows, Cols   int
	Start, Goal  *gridgraph.Position
	HVCost       int
	DiagonalCost int
	Diagonal     bool
	Obstacles    []gridgraph.Position
	Hooks        Hooks

	// err records the first invalid option; surfaced by Build.
	err error
}

// DefaultConfig returns a Config for a rows×cols grid with default costs,
// diagonal movement disabled and no obstacles. Start and Goal are unset.
func DefaultConfig(rows, cols int) Config {
	return Config{
		Rows:         rows,
		Cols:         cols,
		HVCost:       DefaultCost,
		DiagonalCost: DefaultCost,
	}
}

// Option configures a Config via functional arguments.
// Invalid values are recorded and reported by Build, never by panic.
type Option func(*Config)

// WithStart sets the start cell.
func WithStart(row, col int) Option {
	return func(c *Config) {
		p := gridgraph.Pos(row, col)
		c.Start = &p
	}
}

// WithGoal sets the goal cell.
func WithGoal(row, col int) Option {
	return func(c *Config) {
		p := gridgraph.Pos(row, col)
		c.Goal = &p
	}
}

// WithHVCost sets the cost of a horizontal or vertical step.
// Zero restores DefaultCost; a negative value or one above MaxCost fails
// Build with ErrInvalidCost.
func WithHVCost(cost int) Option {
	return func(c *Config) { c.HVCost = cost }
}

// WithDiagonalCost sets the cost of a diagonal step.
// Zero restores DefaultCost; a negative value or one above MaxCost fails
// Build with ErrInvalidCost.
func WithDiagonalCost(cost int) Option {
	return func(c *Config) { c.DiagonalCost = cost }
}

// WithDiagonalMoves enables the four diagonal directions.
func WithDiagonalMoves() Option {
	return func(c *Config) { c.Diagonal = true }
}

// WithObstacles appends blocked cells.
func WithObstacles(ps ...gridgraph.Position) Option {
	return func(c *Config) {
		c.Obstacles = append(c.Obstacles, ps...)
	}
}

// WithObstacleRows appends blocked cells given as {row, col} pairs.
// A pair of the wrong length fails Build with ErrInvalidObstacles.
func WithObstacleRows(raw [][]int) Option {
	return func(c *Config) {
		ps, err := gridgraph.ParseObstacles(raw)
		if err != nil {
			if c.err == nil {
				c.err = err
			}
			return
		}
		c.Obstacles = append(c.Obstacles, ps...)
	}
}

// WithOnEnqueue registers a callback run when a cell enters the frontier.
func WithOnEnqueue(fn func(p gridgraph.Position, g, f int)) Option {
	return func(c *Config) {
		if fn != nil {
			c.Hooks.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run when a cell is closed.
func WithOnExpand(fn func(p gridgraph.Position, g int)) Option {
	return func(c *Config) {
		if fn != nil {
			c.Hooks.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run when a frontier cell gets cheaper.
func WithOnRelax(fn func(p gridgraph.Position, oldG, newG int)) Option {
	return func(c *Config) {
		if fn != nil {
			c.Hooks.OnRelax = fn
		}
	}
}

// WithOnFinish registers a callback run once the search terminates.
func WithOnFinish(fn func(s State, path []gridgraph.Position)) Option {
	return func(c *Config) {
		if fn != nil {
			c.Hooks.OnFinish = fn
		}
	}
}
