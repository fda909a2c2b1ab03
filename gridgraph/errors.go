package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCell indicates a cell value other than Walkable (0) or Wall (1).
	ErrInvalidCell = errors.New("gridgraph: cell value must be 0 (walkable) or 1 (wall)")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
