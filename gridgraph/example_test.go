// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/gridgraph"
)

// ExampleGrid_Neighbors lists the legal moves out of a cell next to a wall,
// first with orthogonal movement only, then with diagonals enabled.
func ExampleGrid_Neighbors() {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	fmt.Println(g.Neighbors(gridgraph.Pos(0, 1), false))
	fmt.Println(g.Neighbors(gridgraph.Pos(0, 1), true))
	// Output:
	// [(0,0) (0,2)]
	// [(0,0) (0,2) (1,0) (1,2)]
}

// ExampleGrid_Reachable floods the region around the start cell.
func ExampleGrid_Reachable() {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	fmt.Println(g.Reachable(gridgraph.Pos(0, 0), false))
	fmt.Println(len(g.Reachable(gridgraph.Pos(0, 0), true)))
	fmt.Println(g.Render(gridgraph.Pos(0, 0), gridgraph.Pos(2, 2)))
	// Output:
	// [(0,0) (0,1) (1,1)]
	// 4
	// S . #
	// # . #
	// # # E
}
