package gridgraph

import (
	"container/list"
	"fmt"
)

// BreachPath finds a start→goal route that crosses the fewest walls, as if
// every wall could be knocked down at cost 1 and floor were free.
// It returns the route (start and goal included) and the number of walls on
// it; walls == 0 means the cells are already connected.
//
// Behavior:
//  1. Validate that both endpoints are in bounds (walls are allowed).
//  2. 0–1 BFS from start over the 4- or 8-neighbourhood:
//     • stepping onto floor  → cost 0, pushed to the front of the deque
//     • stepping onto a wall → cost 1, pushed to the back
//  3. Stop when goal leaves the deque; rebuild the route from predecessors.
//
// Complexity: O(R·C) time and memory.
func (g *Grid) BreachPath(start, goal Position, allowDiagonal bool) (path []Position, walls int, err error) {
	for _, p := range []Position{start, goal} {
		if !g.InBounds(p) {
			return nil, 0, fmt.Errorf("%w: %v outside %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
		}
	}

	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	s := g.index(start)
	dist[s] = g.cells[start.Row][start.Col]
	dq := list.New()
	dq.PushFront(start)

	offsets := orthogonalOffsets[:]
	if allowDiagonal {
		offsets = append(offsets[:len(offsets):len(offsets)], diagonalOffsets[:]...)
	}

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(Position)
		if u == goal {
			break
		}
		ui := g.index(u)
		for _, d := range offsets {
			v := Position{u.Row + d[0], u.Col + d[1]}
			if !g.InBounds(v) {
				continue
			}
			step := g.cells[v.Row][v.Col]
			vi := g.index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := g.index(goal); at >= 0; at = prev[at] {
		path = append(path, Position{at / g.cols, at % g.cols})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[g.index(goal)], nil
}
