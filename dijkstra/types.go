package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrInvalidSource indicates the source cell is out of bounds or a wall.
	ErrInvalidSource = errors.New("dijkstra: source is not a walkable cell")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// AllowDiagonal – enable 8-directional movement (diagonal step costs √2).
// ReturnPath    – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance   – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	AllowDiagonal bool
	ReturnPath    bool
	MaxDistance   float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithDiagonal enables 8-directional movement.
func WithDiagonal(allow bool) Option {
	return func(o *Options) {
		o.AllowDiagonal = allow
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values are recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options initialized with:
//   - AllowDiagonal: false
//   - ReturnPath:    false
//   - MaxDistance:   +Inf
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: false,
		ReturnPath:    false,
		MaxDistance:   math.Inf(1),
	}
}
