package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/pathlab/gridgraph"
	"github.com/katalvlaran/pathlab/heuristic"
)

// Search runs A* on g from start to goal using h and returns the Result.
//
// Preconditions and validation (in order, all before the search loop):
//  1. g must be non-nil (ErrNilGrid).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. Options must be valid (ErrOptionViolation).
//  4. start and goal must be inside the grid (ErrOutOfBounds).
//  5. start and goal must be walkable (ErrBlockedEndpoint).
//
// An unreachable goal is reported as Result.Success == false with a nil error;
// Explored then lists every cell reachable from start.
//
// h receives heuristic.WithStart(start) as its context on every call.
func Search(g *gridgraph.Grid, start, goal gridgraph.Position, h heuristic.Heuristic, opts ...Option) (*Result, error) {
	began := time.Now()

	// 1) Build and validate options
	if g == nil {
		return nil, ErrNilGrid
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate endpoints
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	// 3) Prepare per-call state
	capacity := g.WalkableCount()
	r := &runner{
		grid:     g,
		h:        h,
		hctx:     heuristic.WithStart(start),
		goal:     goal,
		opts:     cfg,
		nodes:    make([]node, 0, capacity),
		open:     make(openPQ, 0, capacity),
		closed:   make(map[gridgraph.Position]bool, capacity),
		gScore:   make(map[gridgraph.Position]float64, capacity),
		explored: make([]gridgraph.Position, 0, capacity),
	}

	// 4) Seed and run
	r.init(start)
	res, err := r.process()
	res.TimeTaken = time.Since(began)

	return res, err
}

func checkEndpoint(g *gridgraph.Grid, which string, p gridgraph.Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrOutOfBounds, which, p, g.Rows(), g.Cols())
	}
	if g.IsWall(p) {
		return fmt.Errorf("%w: %s %v", ErrBlockedEndpoint, which, p)
	}

	return nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid     *gridgraph.Grid                // read-only input
	h        heuristic.Heuristic            // active estimator
	hctx     heuristic.Context              // context passed to every estimate
	goal     gridgraph.Position             // target cell
	opts     Options                        // validated options
	nodes    []node                         // arena of every node created
	open     openPQ                         // min-heap over (f, seq)
	closed   map[gridgraph.Position]bool    // finalised cells
	gScore   map[gridgraph.Position]float64 // best-known g per cell
	explored []gridgraph.Position           // finalisation order
	seq      uint64                         // next insertion sequence number
}

// init pushes the start node with g=0.
func (r *runner) init(start gridgraph.Position) {
	heap.Init(&r.open)
	r.gScore[start] = 0
	r.push(start, 0, -1)
}

// push appends a node to the arena and its entry to the heap.
func (r *runner) push(p gridgraph.Position, g float64, parent int) {
	h := r.h.Estimate(p, r.goal, r.hctx)
	r.nodes = append(r.nodes, node{pos: p, g: g, h: h, parent: parent})
	heap.Push(&r.open, entry{f: g + h, seq: r.seq, idx: len(r.nodes) - 1})
	r.seq++
}

// process is the main loop. It returns a Result in every case; err is non-nil
// only when a bounded search stops early.
func (r *runner) process() (*Result, error) {
	ctx := r.opts.Ctx
	for r.open.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return r.failure(), fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		default:
		}

		// 1) Pop the lowest (f, seq) entry; drop stale ones.
		e := heap.Pop(&r.open).(entry)
		cur := r.nodes[e.idx]
		if r.closed[cur.pos] {
			continue
		}

		// 2) Respect the expansion cap before finalising another cell.
		if r.opts.MaxExpansions > 0 && len(r.explored) >= r.opts.MaxExpansions {
			return r.failure(), fmt.Errorf("%w: %d cells finalised", ErrExpansionLimit, len(r.explored))
		}

		// 3) Finalise.
		r.closed[cur.pos] = true
		r.explored = append(r.explored, cur.pos)
		r.opts.OnExpand(cur.pos, cur.g, cur.h)

		// 4) Goal popped: done.
		if cur.pos == r.goal {
			return r.success(e.idx), nil
		}

		// 5) Relax neighbors.
		r.relax(e.idx)
	}

	return r.failure(), nil
}

// relax pushes a new node for every valid, non-closed neighbor of the node at
// idx whose tentative g improves on the best recorded one.
func (r *runner) relax(idx int) {
	cur := r.nodes[idx]
	for _, nb := range r.grid.Neighbors(cur.pos, r.opts.AllowDiagonal) {
		if r.closed[nb] {
			continue
		}
		tentative := cur.g + gridgraph.StepCost(cur.pos, nb)
		if best, seen := r.gScore[nb]; seen && tentative >= best {
			continue
		}
		r.gScore[nb] = tentative
		r.push(nb, tentative, idx)
	}
}

// success reconstructs the path ending at the arena node goalIdx.
func (r *runner) success(goalIdx int) *Result {
	var path []gridgraph.Position
	for at := goalIdx; at >= 0; at = r.nodes[at].parent {
		path = append(path, r.nodes[at].pos)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{
		Success:       true,
		Path:          path,
		Explored:      r.explored,
		NodesExplored: len(r.explored),
		PathLength:    len(path),
		Cost:          r.nodes[goalIdx].g,
	}
}

// failure packages the trace gathered so far with an empty path.
func (r *runner) failure() *Result {
	return &Result{
		Success:       false,
		Path:          []gridgraph.Position{},
		Explored:      r.explored,
		NodesExplored: len(r.explored),
	}
}
