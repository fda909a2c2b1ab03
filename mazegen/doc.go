// Package mazegen builds obstacle grids for the search engine: uniformly
// random walls, perfect mazes from a recursive backtracker or randomized
// Kruskal, and two fixed reference mazes.
//
// All generators take an explicit *rand.Rand so that a seed reproduces the
// same maze. The returned Maze always has walkable Start and Goal cells.
//
//	Random(rows, cols, p, rng)  each cell is a wall with probability p,
//	                            start (0,0) and goal (rows-1, cols-1) cleared
//	Carved(size, rng)           perfect maze on an odd size×size grid, start
//	                            near the top and goal near the bottom
//	Kruskal(size, rng)          same shape and endpoints as Carved, built by
//	                            joining rooms through a union-find
//	Simple(), Medium()          fixed 5×5 and 10×10 mazes
//
// Random mazes may have no path between Start and Goal; Carved and Kruskal
// mazes always do. EnsurePath repairs an unsolvable maze by opening the
// fewest walls between its endpoints.
package mazegen
