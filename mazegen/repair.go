package mazegen

import "github.com/katalvlaran/pathlab/gridgraph"

// EnsurePath opens the fewest walls needed for Goal to be reachable from
// Start under the given movement rule, editing m.Grid in place. It returns
// the number of walls removed; 0 means the maze was already solvable.
func EnsurePath(m *Maze, allowDiagonal bool) (int, error) {
	g, err := m.GridGraph()
	if err != nil {
		return 0, err
	}
	path, walls, err := g.BreachPath(m.Start, m.Goal, allowDiagonal)
	if err != nil {
		return 0, err
	}
	for _, p := range path {
		m.Grid[p.Row][p.Col] = gridgraph.Walkable
	}

	return walls, nil
}
