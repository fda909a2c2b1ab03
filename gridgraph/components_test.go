// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}

// TestReachable_Orthogonal floods a region split by a wall column.
//
// Grid (1 = wall):
//
//	0 1 0
//	0 1 0
//	0 0 1
//
// From (0,0): the left column plus (2,1). (0,2),(1,2) are cut off.
func TestReachable_Orthogonal(t *testing.T) {
	g := MustGrid([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	got := g.Reachable(Pos(0, 0), false)
	assert.Equal(t, Pos(0, 0), got[0], "start comes first")

	sortPositions(got)
	assert.Equal(t, []Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, got)
	assert.False(t, g.Connected(Pos(0, 0), Pos(0, 2), false))
}

// TestReachable_Diagonal shows diagonal moves joining corner-touching cells.
func TestReachable_Diagonal(t *testing.T) {
	g := MustGrid([][]int{
		{0, 1},
		{1, 0},
	})
	assert.Len(t, g.Reachable(Pos(0, 0), false), 1)
	assert.Len(t, g.Reachable(Pos(0, 0), true), 2)
	assert.True(t, g.Connected(Pos(0, 0), Pos(1, 1), true))
}

// TestReachable_InvalidStart returns nil for walls and out-of-bounds cells.
func TestReachable_InvalidStart(t *testing.T) {
	g := MustGrid([][]int{{1, 0}})
	assert.Nil(t, g.Reachable(Pos(0, 0), true))
	assert.Nil(t, g.Reachable(Pos(3, 3), true))
	assert.False(t, g.Connected(Pos(0, 1), Pos(0, 0), true))
}

func TestIndex(t *testing.T) {
	g := MustGrid([][]int{{0, 0, 0}, {0, 0, 0}})
	assert.Equal(t, 0, g.index(Pos(0, 0)))
	assert.Equal(t, 5, g.index(Pos(1, 2)))
}
