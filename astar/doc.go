// Package astar implements A* shortest-path search on a gridgraph.Grid.
//
// A* expands cells in increasing order of f = g + h, where g is the exact cost
// accumulated from the start and h is a heuristic estimate of the remaining
// cost to the goal. Orthogonal moves cost 1 and diagonal moves cost √2.
//
// Algorithm:
//
//  1. Push the start node (g=0, h=h(start)) and record g[start]=0.
//  2. Pop the node with the lowest (f, seq) key. If its cell is already closed
//     the entry is stale and is dropped (lazy deletion).
//  3. Close the cell and append it to the exploration trace.
//  4. If the cell is the goal, walk the parent indices back to the start,
//     reverse, and return a successful Result.
//  5. Otherwise relax every valid, non-closed neighbor: when the tentative
//     g improves on the recorded one (or none is recorded), store it and push
//     a fresh node. Older entries for the same cell stay in the heap.
//  6. If the open set empties, return an unsuccessful Result carrying the full
//     exploration trace. An unreachable goal is not an error.
//
// Termination happens when the goal is popped, not when it is discovered, so
// the returned path is optimal for any admissible, consistent heuristic.
//
// Ordering:
//
//	Ties on f are broken by insertion sequence (earlier first). The sequence is
//	unique per push, so the order is total and a search is fully deterministic:
//	identical inputs produce identical Path and Explored slices.
//
// Memory:
//
//	Nodes live in a flat arena; a parent is an index into it (-1 for the root).
//	Duplicate heap entries trade memory for not needing decrease-key.
//
// Complexity:
//
//   - Time:  O(E log E) with E ≤ d·R·C pushes (d = 4 or 8).
//   - Space: O(R·C + E).
//
// Errors (sentinel), all detected before the loop starts:
//
//   - ErrNilGrid, ErrNilHeuristic, ErrOptionViolation
//   - ErrOutOfBounds       start or goal outside the grid
//   - ErrBlockedEndpoint   start or goal on a wall
//
// and, only when the caller opts into bounded search:
//
//   - ErrExpansionLimit    WithMaxExpansions cap reached (partial Result returned)
//   - ErrAborted           WithContext cancelled (partial Result returned)
//
// Concurrency:
//
//	Search keeps all state local to the call. A *gridgraph.Grid is read-only and
//	may be shared by concurrent searches.
package astar
