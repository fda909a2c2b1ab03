package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/pathlab/gridgraph"
)

// Dijkstra computes shortest distances from source to every reachable cell of g.
//
// Returns:
//
//   - dist: map from cell to minimum cost; unreachable cells are absent.
//   - prev: predecessor map if ReturnPath was requested (nil otherwise);
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  ErrNilGrid, ErrInvalidSource or ErrBadMaxDistance.
func Dijkstra(g *gridgraph.Grid, source gridgraph.Position, opts ...Option) (map[gridgraph.Position]float64, map[gridgraph.Position]gridgraph.Position, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.IsValid(source) {
		return nil, nil, ErrInvalidSource
	}

	n := g.WalkableCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Position]float64, n),
		visited: make(map[gridgraph.Position]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Position]gridgraph.Position, n)
	}

	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// Distance returns the shortest cost from source to target, and false when
// target is unreachable.
func Distance(g *gridgraph.Grid, source, target gridgraph.Position, allowDiagonal bool) (float64, bool, error) {
	dist, _, err := Dijkstra(g, source, WithDiagonal(allowDiagonal))
	if err != nil {
		return 0, false, err
	}
	d, ok := dist[target]

	return d, ok, nil
}

// PathTo rebuilds the source→target path from a predecessor map produced with
// WithReturnPath. Returns nil if target was not reached.
func PathTo(prev map[gridgraph.Position]gridgraph.Position, source, target gridgraph.Position) []gridgraph.Position {
	if target != source {
		if _, ok := prev[target]; !ok {
			return nil
		}
	}
	path := []gridgraph.Position{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid                           // read-only input
	options Options                                   // validated options
	dist    map[gridgraph.Position]float64            // best distance per cell
	prev    map[gridgraph.Position]gridgraph.Position // predecessor per cell
	visited map[gridgraph.Position]bool               // finalised cells
	pq      nodePQ                                    // lazy min-heap
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init(source gridgraph.Position) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{pos: source, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its
// neighbors, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		// stale heap entry
		if r.visited[item.pos] {
			continue
		}
		// Do NOT mark as visited; everything left is farther still.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.pos] = true
		r.relax(item.pos)
	}
}

// relax improves distances of u's neighbors through u.
func (r *runner) relax(u gridgraph.Position) {
	for _, v := range r.g.Neighbors(u, r.options.AllowDiagonal) {
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + gridgraph.StepCost(u, v)
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{pos: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	pos  gridgraph.Position
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
