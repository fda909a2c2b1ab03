package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/gridgraph"
	"github.com/katalvlaran/pathlab/heuristic"
)

const costTolerance = 1e-9

// randomGrid builds a rows×cols grid with walls at probability p and the two
// opposite corners cleared.
func randomGrid(rng *rand.Rand, rows, cols int, p float64) *gridgraph.Grid {
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			if rng.Float64() < p {
				cells[r][c] = gridgraph.Wall
			}
		}
	}
	cells[0][0] = gridgraph.Walkable
	cells[rows-1][cols-1] = gridgraph.Walkable

	return gridgraph.MustGrid(cells)
}

// assertValidPath checks contiguity, walkability and the movement rule.
func assertValidPath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Position, diagonal bool) {
	t.Helper()
	for i, p := range path {
		require.Truef(t, g.IsValid(p), "path[%d]=%v is not walkable", i, p)
		if i > 0 {
			require.Truef(t, g.Adjacent(path[i-1], p, diagonal), "path[%d]→path[%d] %v→%v is not a legal move", i-1, i, path[i-1], p)
		}
	}
}

// assertTraceSound checks closed-set monotonicity of the exploration trace.
func assertTraceSound(t *testing.T, g *gridgraph.Grid, res *astar.Result) {
	t.Helper()
	require.Equal(t, len(res.Explored), res.NodesExplored)
	require.LessOrEqual(t, res.NodesExplored, g.WalkableCount())
	seen := make(map[gridgraph.Position]bool, len(res.Explored))
	for _, p := range res.Explored {
		require.Falsef(t, seen[p], "%v explored twice", p)
		seen[p] = true
	}
}

// pairing is a heuristic together with the movement rule it is designed for.
type pairing struct {
	name     string
	diagonal bool
}

var admissiblePairings = []pairing{
	{heuristic.Manhattan, false},
	{heuristic.Euclidean, true},
	{heuristic.Chebyshev, true},
	{heuristic.Octile, true},
	// also admissible on 4-way grids
	{heuristic.Euclidean, false},
	{heuristic.Octile, false},
}

// TestProperty_Optimality: for admissible pairings the path cost equals the
// uniform-cost oracle over many random grids, and failures agree on reachability.
func TestProperty_Optimality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 150; trial++ {
		rows, cols := 4+rng.Intn(8), 4+rng.Intn(8)
		g := randomGrid(rng, rows, cols, 0.3)
		start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(rows-1, cols-1)

		for _, pr := range admissiblePairings {
			require.True(t, heuristic.Admissible(pr.name, pr.diagonal))
			res, err := astar.Search(g, start, goal, heuristic.MustLookup(pr.name), astar.WithDiagonal(pr.diagonal))
			require.NoError(t, err)

			want, reachable, err := dijkstra.Distance(g, start, goal, pr.diagonal)
			require.NoError(t, err)
			require.Equalf(t, reachable, res.Success, "trial %d %s diag=%v\n%s", trial, pr.name, pr.diagonal, g)
			assertTraceSound(t, g, res)
			if !reachable {
				assert.ElementsMatch(t, g.Reachable(start, pr.diagonal), res.Explored)
				continue
			}
			assert.InDeltaf(t, want, res.Cost, costTolerance, "trial %d %s diag=%v\n%s", trial, pr.name, pr.diagonal, g)
			assert.InDelta(t, res.Cost, gridgraph.PathCost(res.Path), costTolerance)
			assert.Equal(t, len(res.Path), res.PathLength)
			assertValidPath(t, g, res.Path, pr.diagonal)
		}
	}
}

// TestProperty_OrthogonalStepsMatchBFS: with 4-way movement every step costs 1,
// so the Manhattan path has exactly BFS-depth+1 cells.
func TestProperty_OrthogonalStepsMatchBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		g := randomGrid(rng, 8, 8, 0.3)
		start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(7, 7)
		depth := bfsDepth(g, start, goal)

		res, err := astar.Search(g, start, goal, heuristic.MustLookup(heuristic.Manhattan))
		require.NoError(t, err)
		if depth < 0 {
			assert.False(t, res.Success)
			continue
		}
		assert.Equal(t, depth+1, res.PathLength, "trial %d\n%s", trial, g)
	}
}

// bfsDepth is a brute-force breadth-first step count, -1 when unreachable.
func bfsDepth(g *gridgraph.Grid, start, goal gridgraph.Position) int {
	depth := map[gridgraph.Position]int{start: 0}
	queue := []gridgraph.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return depth[cur]
		}
		for _, nb := range g.Neighbors(cur, false) {
			if _, ok := depth[nb]; !ok {
				depth[nb] = depth[cur] + 1
				queue = append(queue, nb)
			}
		}
	}

	return -1
}

// TestProperty_CustomTolerated: the greedy heuristic may return longer paths.
// That is accepted; the path must still be valid and never shorter than optimal.
func TestProperty_CustomTolerated(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	h := heuristic.MustLookup(heuristic.Custom)
	suboptimal := 0
	for trial := 0; trial < 200; trial++ {
		g := randomGrid(rng, 10, 10, 0.3)
		start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(9, 9)
		for _, diagonal := range []bool{false, true} {
			res, err := astar.Search(g, start, goal, h, astar.WithDiagonal(diagonal))
			require.NoError(t, err)
			assertTraceSound(t, g, res)

			want, reachable, err := dijkstra.Distance(g, start, goal, diagonal)
			require.NoError(t, err)
			require.Equal(t, reachable, res.Success, "custom still finds a path whenever one exists")
			if !reachable {
				continue
			}
			assertValidPath(t, g, res.Path, diagonal)
			assert.GreaterOrEqual(t, res.Cost, want-costTolerance)
			if res.Cost > want+costTolerance {
				suboptimal++
			}
		}
	}
	t.Logf("custom heuristic returned %d suboptimal paths (tolerated)", suboptimal)
}

// TestProperty_CustomExploresLess: on an open grid the weighted heuristic
// finalises no more cells than plain Manhattan.
func TestProperty_CustomExploresLess(t *testing.T) {
	g := openGrid(20)
	start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(19, 19)

	plain, err := astar.Search(g, start, goal, heuristic.MustLookup(heuristic.Manhattan))
	require.NoError(t, err)
	greedy, err := astar.Search(g, start, goal, heuristic.MustLookup(heuristic.Custom))
	require.NoError(t, err)

	assert.LessOrEqual(t, greedy.NodesExplored, plain.NodesExplored)
	assert.Equal(t, plain.Cost, greedy.Cost, "no obstacles: greedy is still optimal")
}
