// Package pathlab is a workbench for comparing A* heuristics on 2-D
// obstacle grids.
//
// 🚀 What is inside?
//
//	gridgraph/   immutable 0/1 grid, 4- and 8-neighbourhoods, step costs
//	heuristic/   manhattan, euclidean, chebyshev, octile and a weighted custom estimator
//	astar/       the search engine: deterministic (f, seq) ordering, exploration trace
//	dijkstra/    uniform-cost oracle used to check optimality
//	mazegen/     random, carved, kruskal and fixed mazes
//	report/      JSON records, CSV run log, per-heuristic summaries
//	experiment/  seeded comparison suites run in parallel
//	metrics/     Prometheus collectors
//	server/      JSON HTTP API for the browser frontend
//	cmd/pathlab  CLI: serve, solve, generate, experiment
//
// Quick example:
//
//	res, err := astar.Run(ctx, astar.Request{
//		Grid:      [][]int{{0, 0, 0}, {1, 1, 0}, {0, 0, 0}},
//		Start:     []int{0, 0},
//		Goal:      []int{2, 0},
//		Heuristic: "octile",
//	})
//
// Every admissible heuristic returns a shortest path; custom trades that
// guarantee for fewer expanded cells.
package pathlab
