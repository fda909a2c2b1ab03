package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/gridgraph"
)

// ExampleDistance compares 4-way and 8-way shortest costs across an open 4×4 room.
func ExampleDistance() {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	ortho, _, _ := dijkstra.Distance(g, gridgraph.Pos(0, 0), gridgraph.Pos(3, 3), false)
	diag, _, _ := dijkstra.Distance(g, gridgraph.Pos(0, 0), gridgraph.Pos(3, 3), true)
	fmt.Printf("4-way: %.3f\n8-way: %.3f\n", ortho, diag)
	// Output:
	// 4-way: 6.000
	// 8-way: 4.243
}
