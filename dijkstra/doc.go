// Package dijkstra computes exact uniform-cost distances on a gridgraph.Grid.
//
// It is the reference oracle for the A* engine: with no heuristic to guide it,
// Dijkstra settles every reachable cell in increasing distance order, so its
// distances are the true shortest-path costs (orthogonal step 1, diagonal √2).
// Experiment reports and the astar property tests compare A* path costs
// against it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each cell is extracted at most once: V extractions from the heap.
//   - Each relaxation may push a new entry: up to E = d·V pushes (d = 4 or 8).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Walls are never entered; out-of-grid cells do not exist.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrInvalidSource   if the source cell is outside the grid or a wall.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra
