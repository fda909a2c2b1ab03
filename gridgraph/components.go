package gridgraph

// Reachable returns every walkable cell connected to start under the given
// movement rule, in breadth-first discovery order (start first).
// Returns nil when start is not a valid cell.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Reachable(start Position, allowDiagonal bool) []Position {
	if !g.IsValid(start) {
		return nil
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(start)] = true
	queue := []Position{start}

	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi], allowDiagonal) {
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}

// Connected reports whether a and b lie in the same walkable region.
func (g *Grid) Connected(a, b Position, allowDiagonal bool) bool {
	if !g.IsValid(b) {
		return false
	}
	for _, p := range g.Reachable(a, allowDiagonal) {
		if p == b {
			return true
		}
	}

	return false
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}
