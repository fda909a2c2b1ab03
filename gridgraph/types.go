package gridgraph

import (
	"encoding/json"
	"fmt"
)

// Cell states as they appear in the input matrix.
const (
	// Walkable marks a floor cell.
	Walkable = 0
	// Wall marks an obstacle.
	Wall = 1
)

// Position is a (Row, Col) coordinate. It is comparable and serves as the
// key type for every map and set keyed by cell.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// MarshalJSON encodes the position as a two-element array [row, col].
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

// UnmarshalJSON decodes a two-element array [row, col].
func (p *Position) UnmarshalJSON(data []byte) error {
	var rc []int
	if err := json.Unmarshal(data, &rc); err != nil {
		return fmt.Errorf("gridgraph: position: %w", err)
	}
	if len(rc) != 2 {
		return fmt.Errorf("gridgraph: position must have exactly 2 coordinates, got %d", len(rc))
	}
	p.Row, p.Col = rc[0], rc[1]

	return nil
}

// MarshalYAML encodes the position as a flow sequence [row, col].
func (p Position) MarshalYAML() (interface{}, error) {
	return []int{p.Row, p.Col}, nil
}

// UnmarshalYAML decodes a [row, col] sequence.
func (p *Position) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var rc []int
	if err := unmarshal(&rc); err != nil {
		return fmt.Errorf("gridgraph: position: %w", err)
	}
	if len(rc) != 2 {
		return fmt.Errorf("gridgraph: position must have exactly 2 coordinates, got %d", len(rc))
	}
	p.Row, p.Col = rc[0], rc[1]

	return nil
}

// Grid is an immutable obstacle map. cells[r][c] holds Walkable or Wall.
// The zero value is not usable; build grids with NewGrid.
type Grid struct {
	rows, cols int
	cells      [][]int
	walkable   int
}

// direction offsets in neighbor order: orthogonal first, diagonals after.
var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)
