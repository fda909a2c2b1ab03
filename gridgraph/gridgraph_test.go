package gridgraph_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid validation
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or non-binary inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		err   error
	}{
		{"NilRows", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 1}, {0}}, gridgraph.ErrNonRectangular},
		{"InvalidCell", [][]int{{0, 2}, {0, 0}}, gridgraph.ErrInvalidCell},
		{"NegativeCell", [][]int{{-1}}, gridgraph.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.NewGrid(tc.cells)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	cells := [][]int{{0, 0}, {0, 1}}
	g, err := gridgraph.NewGrid(cells)
	require.NoError(t, err)

	cells[0][0] = 1
	assert.True(t, g.IsValid(gridgraph.Pos(0, 0)), "grid must not observe caller mutation")

	out := g.Cells()
	out[1][1] = 0
	assert.True(t, g.IsWall(gridgraph.Pos(1, 1)), "Cells must return a copy")

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 3, g.WalkableCount())
}

//----------------------------------------------------------------------------//
// Validity and neighbors
//----------------------------------------------------------------------------//

// TestIsValid checks bounds and wall handling on a 2×3 grid.
func TestIsValid(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 1, 0},
		{0, 0, 0},
	})

	valid := []gridgraph.Position{{0, 0}, {0, 2}, {1, 1}}
	for _, p := range valid {
		assert.Truef(t, g.IsValid(p), "IsValid(%v)", p)
	}
	invalid := []gridgraph.Position{{0, 1}, {-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, p := range invalid {
		assert.Falsef(t, g.IsValid(p), "IsValid(%v)", p)
	}
	assert.True(t, g.IsWall(gridgraph.Pos(0, 1)))
	assert.False(t, g.IsWall(gridgraph.Pos(5, 5)), "out of bounds is not a wall")
}

// TestNeighbors_Order verifies the fixed orthogonal-then-diagonal order.
func TestNeighbors_Order(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	center := gridgraph.Pos(1, 1)

	assert.Equal(t, []gridgraph.Position{
		{0, 1}, {2, 1}, {1, 0}, {1, 2},
	}, g.Neighbors(center, false))

	assert.Equal(t, []gridgraph.Position{
		{0, 1}, {2, 1}, {1, 0}, {1, 2},
		{0, 0}, {0, 2}, {2, 0}, {2, 2},
	}, g.Neighbors(center, true))
}

// TestNeighbors_FiltersWallsAndEdges checks a corner cell next to walls.
func TestNeighbors_FiltersWallsAndEdges(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 1},
		{0, 0},
	})
	assert.Equal(t, []gridgraph.Position{{1, 0}}, g.Neighbors(gridgraph.Pos(0, 0), false))
	assert.Equal(t, []gridgraph.Position{{1, 0}, {1, 1}}, g.Neighbors(gridgraph.Pos(0, 0), true))
}

// TestAdjacent covers orthogonal, diagonal and invalid moves.
func TestAdjacent(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	cases := []struct {
		name     string
		a, b     gridgraph.Position
		diagonal bool
		want     bool
	}{
		{"Orthogonal", gridgraph.Pos(0, 0), gridgraph.Pos(0, 1), false, true},
		{"DiagonalDisallowed", gridgraph.Pos(0, 0), gridgraph.Pos(1, 1), true, false}, // wall
		{"DiagonalNoFlag", gridgraph.Pos(0, 1), gridgraph.Pos(1, 2), false, false},
		{"DiagonalFlag", gridgraph.Pos(0, 1), gridgraph.Pos(1, 2), true, true},
		{"Same", gridgraph.Pos(0, 0), gridgraph.Pos(0, 0), true, false},
		{"TwoApart", gridgraph.Pos(0, 0), gridgraph.Pos(0, 2), true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Adjacent(tc.a, tc.b, tc.diagonal))
		})
	}
}

// TestStepAndPathCost checks the 1 / √2 movement costs.
func TestStepAndPathCost(t *testing.T) {
	assert.Equal(t, 1.0, gridgraph.StepCost(gridgraph.Pos(0, 0), gridgraph.Pos(0, 1)))
	assert.Equal(t, math.Sqrt2, gridgraph.StepCost(gridgraph.Pos(0, 0), gridgraph.Pos(1, 1)))

	path := []gridgraph.Position{{0, 0}, {1, 1}, {1, 2}, {2, 3}}
	assert.InDelta(t, 1+2*math.Sqrt2, gridgraph.PathCost(path), 1e-12)
	assert.Zero(t, gridgraph.PathCost(path[:1]))
	assert.Zero(t, gridgraph.PathCost(nil))
}

//----------------------------------------------------------------------------//
// Rendering and JSON
//----------------------------------------------------------------------------//

func TestRender(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{0, 1, 0},
		{0, 0, 0},
	})
	assert.Equal(t, ". # .\n. . .", g.String())
	assert.Equal(t, "S # .\n. . E", g.Render(gridgraph.Pos(0, 0), gridgraph.Pos(1, 2)))
}

func TestPosition_JSON(t *testing.T) {
	data, err := json.Marshal([]gridgraph.Position{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[3,4]]`, string(data))

	var p gridgraph.Position
	require.NoError(t, json.Unmarshal([]byte(`[7, 9]`), &p))
	assert.Equal(t, gridgraph.Pos(7, 9), p)

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &p))
}

func TestPosition_YAML(t *testing.T) {
	var doc struct {
		Start gridgraph.Position `yaml:"start"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("start: [2, 3]\n"), &doc))
	assert.Equal(t, gridgraph.Pos(2, 3), doc.Start)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	var back struct {
		Start []int `yaml:"start"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, []int{2, 3}, back.Start)

	assert.Error(t, yaml.Unmarshal([]byte("start: [1, 2, 3]\n"), &doc))
}
