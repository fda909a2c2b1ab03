package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/gridgraph"
	"github.com/katalvlaran/pathlab/heuristic"
)

// Request is the call contract consumed by the HTTP layer, the CLI and
// experiment drivers: a raw 0/1 matrix, [row, col] endpoints, a heuristic name
// and the diagonal-movement flag.
type Request struct {
	Grid          [][]int `json:"grid" yaml:"grid"`
	Start         []int   `json:"start" yaml:"start"`
	Goal          []int   `json:"goal" yaml:"goal"`
	Heuristic     string  `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	AllowDiagonal bool    `json:"allow_diagonal,omitempty" yaml:"allow_diagonal,omitempty"`
}

// DefaultHeuristic is used by Run when Request.Heuristic is empty.
const DefaultHeuristic = heuristic.Manhattan

// Run validates req and executes Search. Every input problem is reported
// before the search loop starts:
//
//   - ErrInvalidRequest       missing grid, or start/goal not a [row, col] pair
//   - gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular, gridgraph.ErrInvalidCell
//   - heuristic.ErrUnknownHeuristic
//   - ErrOutOfBounds, ErrBlockedEndpoint
//
// ctx is installed with WithContext; opts are applied after it and after
// WithDiagonal(req.AllowDiagonal).
func Run(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	start, goal, err := req.Endpoints()
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.NewGrid(req.Grid)
	if err != nil {
		return nil, err
	}
	h, err := heuristic.Lookup(req.HeuristicName())
	if err != nil {
		return nil, err
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithContext(ctx), WithDiagonal(req.AllowDiagonal))
	all = append(all, opts...)

	return Search(g, start, goal, h, all...)
}

// HeuristicName returns req.Heuristic, or DefaultHeuristic when empty.
func (req Request) HeuristicName() string {
	if req.Heuristic == "" {
		return DefaultHeuristic
	}

	return req.Heuristic
}

// Endpoints converts Start and Goal to positions.
func (req Request) Endpoints() (start, goal gridgraph.Position, err error) {
	if len(req.Grid) == 0 {
		return start, goal, fmt.Errorf("%w: grid is required", ErrInvalidRequest)
	}
	if start, err = toPosition("start", req.Start); err != nil {
		return start, goal, err
	}
	if goal, err = toPosition("goal", req.Goal); err != nil {
		return start, goal, err
	}

	return start, goal, nil
}

func toPosition(which string, rc []int) (gridgraph.Position, error) {
	if len(rc) != 2 {
		return gridgraph.Position{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrInvalidRequest, which, rc)
	}

	return gridgraph.Pos(rc[0], rc[1]), nil
}
