package mazegen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathlab/gridgraph"
)

// disjointSet is a union-find over room indices with path halving and
// union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}

// Kruskal returns a perfect maze built by randomized Kruskal: every room at
// odd coordinates starts in its own set, the walls between neighbouring rooms
// are visited in random order, and a wall is knocked out whenever it joins
// two different sets. Size handling and endpoint selection match Carved.
//
// Kruskal mazes have many short dead ends, where Carved favours long
// corridors.
func Kruskal(size int, rng *rand.Rand) (*Maze, error) {
	if size < 3 {
		return nil, fmt.Errorf("%w: kruskal maze needs size >= 3, got %d", ErrBadSize, size)
	}
	cells := solidGrid(size)
	dim := len(cells)
	rooms := dim / 2

	type edge struct{ a, b gridgraph.Position }
	edges := make([]edge, 0, 2*rooms*rooms)
	for r := 1; r < dim-1; r += 2 {
		for c := 1; c < dim-1; c += 2 {
			cells[r][c] = gridgraph.Walkable
			if c+2 < dim-1 {
				edges = append(edges, edge{gridgraph.Pos(r, c), gridgraph.Pos(r, c+2)})
			}
			if r+2 < dim-1 {
				edges = append(edges, edge{gridgraph.Pos(r, c), gridgraph.Pos(r+2, c)})
			}
		}
	}
	rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	room := func(p gridgraph.Position) int { return (p.Row/2)*rooms + p.Col/2 }
	ds := newDisjointSet(rooms * rooms)
	joined := 0
	for _, e := range edges {
		if !ds.union(room(e.a), room(e.b)) {
			continue
		}
		cells[(e.a.Row+e.b.Row)/2][(e.a.Col+e.b.Col)/2] = gridgraph.Walkable
		if joined++; joined == rooms*rooms-1 {
			break
		}
	}
	start, goal := pickEndpoints(cells, rng)

	return newMaze(cells, start, goal), nil
}
