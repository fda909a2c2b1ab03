package astar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathlab/gridgraph"
)

// Sentinel errors returned by Search and Run.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that no heuristic was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrOutOfBounds indicates the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: position out of bounds")

	// ErrBlockedEndpoint indicates the start or goal cell is a wall.
	ErrBlockedEndpoint = errors.New("astar: endpoint is a wall")

	// ErrInvalidRequest indicates a Request with missing or malformed fields.
	ErrInvalidRequest = errors.New("astar: invalid request")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned, with the partial Result, when the
	// WithMaxExpansions cap is reached before the goal is finalised.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrAborted is returned, wrapping the context error and with the partial
	// Result, when the WithContext context is cancelled mid-search.
	ErrAborted = errors.New("astar: search aborted")
)

// Result is the outcome of one search. It is never mutated after Search returns.
//
//   - Success:       whether the goal was reached.
//   - Path:          cells from start to goal inclusive; empty on failure.
//   - Explored:      cells in the order they were finalised (closed).
//   - NodesExplored: len(Explored).
//   - PathLength:    len(Path), in cells.
//   - Cost:          g of the goal in cost units (1 orthogonal, √2 diagonal); 0 on failure.
//   - TimeTaken:     wall-clock duration of the Search call.
type Result struct {
	Success       bool
	Path          []gridgraph.Position
	Explored      []gridgraph.Position
	NodesExplored int
	PathLength    int
	Cost          float64
	TimeTaken     time.Duration
}

// Option configures Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds the tunable parameters of a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// AllowDiagonal enables 8-directional movement.
	AllowDiagonal bool

	// MaxExpansions, if > 0, caps the number of finalised cells.
	// 0 means unlimited.
	MaxExpansions int

	// OnExpand is called each time a cell is finalised, with its g and h.
	OnExpand func(p gridgraph.Position, g, h float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - orthogonal movement only
//   - no expansion cap
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		AllowDiagonal: false,
		MaxExpansions: 0,
		OnExpand:      func(gridgraph.Position, float64, float64) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiagonal enables or disables diagonal movement.
func WithDiagonal(allow bool) Option {
	return func(o *Options) {
		o.AllowDiagonal = allow
	}
}

// WithMaxExpansions caps the number of cells the search may finalise.
//
//	n > 0: stop with ErrExpansionLimit once n cells are closed without reaching the goal
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run when a cell is finalised.
func WithOnExpand(fn func(p gridgraph.Position, g, h float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
