package heuristic

import (
	"math"

	"github.com/katalvlaran/pathlab/gridgraph"
)

const (
	// customWeight inflates Manhattan so the search favours nodes near the goal.
	customWeight = 2.0
	// customTieBreak scales the deviation-from-line penalty.
	customTieBreak = 0.001
)

func deltas(pos, goal gridgraph.Position) (dr, dc float64) {
	return math.Abs(float64(pos.Row - goal.Row)), math.Abs(float64(pos.Col - goal.Col))
}

// ManhattanDistance is the L1 norm |Δr| + |Δc|.
func ManhattanDistance(pos, goal gridgraph.Position) float64 {
	dr, dc := deltas(pos, goal)
	return dr + dc
}

// EuclideanDistance is the straight-line L2 norm.
func EuclideanDistance(pos, goal gridgraph.Position) float64 {
	dr, dc := deltas(pos, goal)
	return math.Sqrt(dr*dr + dc*dc)
}

// ChebyshevDistance is the L∞ norm max(|Δr|, |Δc|).
func ChebyshevDistance(pos, goal gridgraph.Position) float64 {
	dr, dc := deltas(pos, goal)
	return math.Max(dr, dc)
}

// OctileDistance is the exact cost on an open 8-connected grid with
// orthogonal cost 1 and diagonal cost √2.
func OctileDistance(pos, goal gridgraph.Position) float64 {
	dr, dc := deltas(pos, goal)
	return (dr + dc) + (math.Sqrt2-2)*math.Min(dr, dc)
}

// CustomDistance is weighted Manhattan plus a cross-product tie-breaker.
// The tie-breaker is |(pos−goal) × (start−goal)|, i.e. twice the area of the
// triangle (pos, goal, start); it is zero on the start→goal line and is only
// applied when c.HasStart is set. Inadmissible.
func CustomDistance(pos, goal gridgraph.Position, c Context) float64 {
	h := customWeight * ManhattanDistance(pos, goal)
	if !c.HasStart {
		return h
	}
	dx1 := pos.Row - goal.Row
	dy1 := pos.Col - goal.Col
	dx2 := c.Start.Row - goal.Row
	dy2 := c.Start.Col - goal.Col
	cross := math.Abs(float64(dx1*dy2 - dx2*dy1))

	return h + cross*customTieBreak
}

// plain wraps a context-free distance as a Heuristic.
type plain struct {
	name string
	fn   func(pos, goal gridgraph.Position) float64
}

func (p plain) Name() string { return p.name }

func (p plain) Estimate(pos, goal gridgraph.Position, _ Context) float64 {
	return p.fn(pos, goal)
}

type custom struct{}

func (custom) Name() string { return Custom }

func (custom) Estimate(pos, goal gridgraph.Position, c Context) float64 {
	return CustomDistance(pos, goal, c)
}
