package gridgraph

import (
	"fmt"
	"math"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of 0/1 cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidCell
// (wrapped with the offending coordinate) for values other than 0 or 1.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation
	copied := make([][]int, rows)
	walkable := 0
	for r := 0; r < rows; r++ {
		copied[r] = make([]int, cols)
		for c, v := range cells[r] {
			switch v {
			case Walkable:
				walkable++
			case Wall:
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrInvalidCell, r, c, v)
			}
			copied[r][c] = v
		}
	}

	return &Grid{rows: rows, cols: cols, cells: copied, walkable: walkable}, nil
}

// MustGrid is like NewGrid but panics on error. Intended for fixtures and tests.
func MustGrid(cells [][]int) *Grid {
	g, err := NewGrid(cells)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// WalkableCount returns the number of Walkable cells.
func (g *Grid) WalkableCount() int { return g.walkable }

// Cells returns a deep copy of the underlying matrix.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = append([]int(nil), g.cells[r]...)
	}

	return out
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsWall reports whether p is inside the grid and blocked.
func (g *Grid) IsWall(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Wall
}

// IsValid reports whether p is inside the grid and walkable.
// Complexity: O(1).
func (g *Grid) IsValid(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Walkable
}

// Neighbors returns the valid cells one move away from p: up to 4 orthogonal
// neighbors (up, down, left, right), followed by up to 4 diagonal neighbors
// (up-left, up-right, down-left, down-right) when allowDiagonal is set.
// Diagonal moves are not blocked by walls on the two cells they cut between.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position, allowDiagonal bool) []Position {
	out := make([]Position, 0, 8)
	for _, d := range orthogonalOffsets {
		if q := (Position{p.Row + d[0], p.Col + d[1]}); g.IsValid(q) {
			out = append(out, q)
		}
	}
	if !allowDiagonal {
		return out
	}
	for _, d := range diagonalOffsets {
		if q := (Position{p.Row + d[0], p.Col + d[1]}); g.IsValid(q) {
			out = append(out, q)
		}
	}

	return out
}

// Adjacent reports whether b is one legal move from a: both cells valid and
// separated by exactly one orthogonal step, or one diagonal step when
// allowDiagonal is set.
func (g *Grid) Adjacent(a, b Position, allowDiagonal bool) bool {
	if !g.IsValid(a) || !g.IsValid(b) {
		return false
	}
	dr, dc := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	switch {
	case dr+dc == 1:
		return true
	case dr == 1 && dc == 1:
		return allowDiagonal
	default:
		return false
	}
}

// StepCost returns the movement cost between two adjacent cells:
// 1 for an orthogonal step and √2 for a diagonal one.
func StepCost(a, b Position) float64 {
	if a.Row != b.Row && a.Col != b.Col {
		return math.Sqrt2
	}

	return 1
}

// PathCost sums StepCost over consecutive pairs of path.
// A path with fewer than two cells costs 0.
func PathCost(path []Position) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		cost += StepCost(path[i-1], path[i])
	}

	return cost
}

// String renders the grid with '#' for walls and '.' for floor,
// cells separated by spaces and rows by newlines.
func (g *Grid) String() string {
	return g.Render(Position{-1, -1}, Position{-1, -1})
}

// Render is like String but marks start with 'S' and goal with 'E'.
func (g *Grid) Render(start, goal Position) string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			p := Position{r, c}
			switch {
			case p == start:
				sb.WriteByte('S')
			case p == goal:
				sb.WriteByte('E')
			case g.cells[r][c] == Wall:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
