package mazegen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/gridgraph"
)

var (
	// ErrBadSize indicates a non-positive or too-small dimension.
	ErrBadSize = errors.New("mazegen: invalid size")

	// ErrBadProbability indicates an obstacle probability outside [0, 1].
	ErrBadProbability = errors.New("mazegen: obstacle probability must be within [0, 1]")

	// ErrBadFormat indicates a maze file that is neither JSON nor YAML.
	ErrBadFormat = errors.New("mazegen: unsupported maze file format")
)

// Maze is a grid with its two endpoints. Height and Width mirror the grid
// dimensions for clients that do not want to measure it.
type Maze struct {
	Grid   [][]int            `json:"grid" yaml:"grid"`
	Start  gridgraph.Position `json:"start" yaml:"start"`
	Goal   gridgraph.Position `json:"goal" yaml:"goal"`
	Height int                `json:"height" yaml:"height,omitempty"`
	Width  int                `json:"width" yaml:"width,omitempty"`
}

func newMaze(cells [][]int, start, goal gridgraph.Position) *Maze {
	m := &Maze{Grid: cells, Start: start, Goal: goal, Height: len(cells)}
	if len(cells) > 0 {
		m.Width = len(cells[0])
	}

	return m
}

// SizeLabel returns "HxW", the maze-size column of the run log.
func (m *Maze) SizeLabel() string {
	return fmt.Sprintf("%dx%d", len(m.Grid), m.cols())
}

func (m *Maze) cols() int {
	if len(m.Grid) == 0 {
		return 0
	}

	return len(m.Grid[0])
}

// GridGraph validates the cells and returns the immutable grid.
func (m *Maze) GridGraph() (*gridgraph.Grid, error) {
	return gridgraph.NewGrid(m.Grid)
}

// Request returns the search request for this maze.
func (m *Maze) Request(heuristic string, allowDiagonal bool) astar.Request {
	return astar.Request{
		Grid:          m.Grid,
		Start:         []int{m.Start.Row, m.Start.Col},
		Goal:          []int{m.Goal.Row, m.Goal.Col},
		Heuristic:     heuristic,
		AllowDiagonal: allowDiagonal,
	}
}

// String draws the maze with S, E, # and . glyphs.
func (m *Maze) String() string {
	g, err := m.GridGraph()
	if err != nil {
		return fmt.Sprintf("<invalid maze: %v>", err)
	}

	return g.Render(m.Start, m.Goal)
}
