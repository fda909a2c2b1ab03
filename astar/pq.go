package astar

import "github.com/katalvlaran/pathlab/gridgraph"

// node is one explored state. Nodes live in runner.nodes; parent is an index
// into that arena, -1 for the start node.
type node struct {
	pos    gridgraph.Position
	g, h   float64
	parent int
}

// entry is a heap slot referring to an arena node. f and seq are copied in so
// Less never touches the arena.
type entry struct {
	f   float64
	seq uint64
	idx int
}

// openPQ is a min-heap of entries ordered by (f, seq).
// It follows the lazy-decrease-key approach: an improved g for a cell pushes a
// new entry and the outdated one is ignored when popped (its cell is closed).
type openPQ []entry

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then by insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
