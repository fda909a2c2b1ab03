package mazegen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathlab/gridgraph"
)

// Random returns a rows×cols maze whose cells are walls with probability p.
// Start is (0,0) and Goal is (rows-1, cols-1); both are cleared.
func Random(rows, cols int, p float64, rng *rand.Rand) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}

	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			if rng.Float64() < p {
				cells[r][c] = gridgraph.Wall
			}
		}
	}
	start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(rows-1, cols-1)
	cells[start.Row][start.Col] = gridgraph.Walkable
	cells[goal.Row][goal.Col] = gridgraph.Walkable

	return newMaze(cells, start, goal), nil
}

// Carved returns a perfect maze built by a randomized depth-first
// backtracker on a dim×dim grid, where dim is size rounded up to odd.
// The border stays solid; corridors run through odd coordinates.
//
// Start is drawn from open cells with row < 0.4·dim and Goal from open cells
// with row > 0.6·dim. When a band is empty, the first (resp. last) open cell
// is used instead.
func Carved(size int, rng *rand.Rand) (*Maze, error) {
	if size < 3 {
		return nil, fmt.Errorf("%w: carved maze needs size >= 3, got %d", ErrBadSize, size)
	}
	cells := solidGrid(size)
	carve(cells, gridgraph.Pos(1, 1), rng)
	start, goal := pickEndpoints(cells, rng)

	return newMaze(cells, start, goal), nil
}

// solidGrid returns a dim×dim grid of walls, dim being size rounded up to odd.
func solidGrid(size int) [][]int {
	dim := size
	if dim%2 == 0 {
		dim++
	}
	cells := make([][]int, dim)
	for r := range cells {
		cells[r] = make([]int, dim)
		for c := range cells[r] {
			cells[r][c] = gridgraph.Wall
		}
	}

	return cells
}

// pickEndpoints draws Start from open cells with row < 0.4·dim and Goal from
// open cells with row > 0.6·dim, falling back to the first and last open cell.
func pickEndpoints(cells [][]int, rng *rand.Rand) (start, goal gridgraph.Position) {
	dim := len(cells)
	var open, top, bottom []gridgraph.Position
	for r := 1; r < dim-1; r++ {
		for c := 1; c < dim-1; c++ {
			if cells[r][c] != gridgraph.Walkable {
				continue
			}
			p := gridgraph.Pos(r, c)
			open = append(open, p)
			if float64(r) < float64(dim)*0.4 {
				top = append(top, p)
			}
			if float64(r) > float64(dim)*0.6 {
				bottom = append(bottom, p)
			}
		}
	}

	start, goal = open[0], open[len(open)-1]
	if len(top) > 0 {
		start = top[rng.Intn(len(top))]
	}
	if len(bottom) > 0 {
		goal = bottom[rng.Intn(len(bottom))]
	}

	return start, goal
}

// carveSteps are two-cell jumps; the cell in between is the knocked-out wall.
var carveSteps = [4][2]int{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}

// frame is one level of the explicit backtracking stack.
type frame struct {
	at    gridgraph.Position
	order [4]int
	next  int
}

// carve opens corridors from origin using an explicit stack instead of
// recursion, so large mazes do not grow the goroutine stack.
func carve(cells [][]int, origin gridgraph.Position, rng *rand.Rand) {
	dim := len(cells)
	push := func(stack []frame, p gridgraph.Position) []frame {
		cells[p.Row][p.Col] = gridgraph.Walkable
		f := frame{at: p, order: [4]int{0, 1, 2, 3}}
		rng.Shuffle(len(f.order), func(i, j int) { f.order[i], f.order[j] = f.order[j], f.order[i] })

		return append(stack, f)
	}

	stack := push(make([]frame, 0, dim*dim/4+1), origin)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := carveSteps[top.order[top.next]]
		top.next++

		nr, nc := top.at.Row+d[0], top.at.Col+d[1]
		if nr <= 0 || nr >= dim-1 || nc <= 0 || nc >= dim-1 || cells[nr][nc] != gridgraph.Wall {
			continue
		}
		cells[top.at.Row+d[0]/2][top.at.Col+d[1]/2] = gridgraph.Walkable
		stack = push(stack, gridgraph.Pos(nr, nc))
	}
}

// Simple returns the 5×5 two-bar maze:
//
//	S . . . .
//	. # # # .
//	. . . . .
//	. # # # .
//	. . . . E
func Simple() *Maze {
	return newMaze([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}, gridgraph.Pos(0, 0), gridgraph.Pos(4, 4))
}

// Medium returns a fixed 10×10 maze of horizontal walls with single gaps,
// start (0,0) and goal (9,9).
func Medium() *Maze {
	return newMaze([][]int{
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 1, 0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	}, gridgraph.Pos(0, 0), gridgraph.Pos(9, 9))
}
