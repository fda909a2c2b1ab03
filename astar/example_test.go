package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/gridgraph"
	"github.com/katalvlaran/pathlab/heuristic"
)

// ExampleSearch routes around a wall along the only corridor.
//
//	S . .
//	# # .
//	E . .
func ExampleSearch() {
	g := gridgraph.MustGrid([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	res, err := astar.Search(g, gridgraph.Pos(0, 0), gridgraph.Pos(2, 0), heuristic.MustLookup(heuristic.Manhattan))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Success, res.PathLength, res.Cost, res.NodesExplored)
	fmt.Println(res.Path)
	// Output:
	// true 7 6 7
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
}

// ExampleRun shows the request facade rejecting an unknown heuristic.
func ExampleRun() {
	_, err := astar.Run(context.Background(), astar.Request{
		Grid:      [][]int{{0, 0}},
		Start:     []int{0, 0},
		Goal:      []int{0, 1},
		Heuristic: "bogus",
	})
	fmt.Println(err)
	// Output:
	// heuristic: unknown heuristic: "bogus" (want one of manhattan, euclidean, chebyshev, octile, custom)
}
