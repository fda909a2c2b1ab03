package heuristic

import (
	"errors"

	"github.com/katalvlaran/pathlab/gridgraph"
)

// ErrUnknownHeuristic is returned by Lookup for names not in the registry.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Registered heuristic names.
const (
	Manhattan = "manhattan"
	Euclidean = "euclidean"
	Chebyshev = "chebyshev"
	Octile    = "octile"
	Custom    = "custom"
)

// Context is the optional search information passed to every estimate.
// HasStart is false when the caller has no start position to offer.
type Context struct {
	Start    gridgraph.Position
	HasStart bool
}

// WithStart returns a Context carrying start.
func WithStart(start gridgraph.Position) Context {
	return Context{Start: start, HasStart: true}
}

// Heuristic estimates the remaining cost from pos to goal.
// Implementations must be pure and return a non-negative value.
type Heuristic interface {
	Name() string
	Estimate(pos, goal gridgraph.Position, c Context) float64
}

// Func adapts a plain function to the Heuristic interface.
type Func struct {
	Label string
	Fn    func(pos, goal gridgraph.Position, c Context) float64
}

// Name returns f.Label.
func (f Func) Name() string { return f.Label }

// Estimate calls f.Fn.
func (f Func) Estimate(pos, goal gridgraph.Position, c Context) float64 {
	return f.Fn(pos, goal, c)
}
