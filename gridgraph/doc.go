// Package gridgraph models a rectangular obstacle grid as an implicit graph.
//
// What:
//
//   - Grid wraps a non-empty, rectangular [][]int of Walkable (0) and Wall (1) cells.
//   - Position is a comparable (Row, Col) pair used as a map key everywhere.
//   - IsValid, Neighbors and Adjacent answer the movement questions a search needs.
//   - Reachable floods the walkable region that contains a start cell.
//   - BreachPath finds the route between two cells that crosses the fewest walls.
//
// Why:
//
//   - A* and the uniform-cost oracle only need "which cells can I step to from here";
//     materialising an explicit edge list for every cell would waste memory.
//   - The grid is deep-copied and never mutated, so one *Grid can be shared by
//     any number of concurrent searches without locking.
//
// Neighbor order:
//
//	orthogonal: up, down, left, right
//	diagonal:   up-left, up-right, down-left, down-right (appended when enabled)
//
// The order only influences tie-breaking in the exploration trace, never
// correctness.
//
// Complexity:
//
//   - NewGrid:   O(R×C) time and memory (deep copy + cell validation).
//   - Neighbors: O(1) (at most 8 candidates).
//   - Reachable: O(R×C×d), Memory: O(R×C)   (d = 4 or 8).
//   - BreachPath: O(R×C×d) via 0-1 BFS, Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a cell holds something other than Walkable or Wall.
//   - ErrOutOfBounds: a BreachPath endpoint lies outside the grid.
package gridgraph
