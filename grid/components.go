package grid

// ConnectedComponents finds all contiguous regions of passable cells under
// 4-connectivity. Each component is a slice of positions in BFS order;
// components are ordered by their first cell in row-major scan.
//
// Time:   O(size²).
// Memory: O(size²) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	buf := make([]Position, 0, 4)

	for i0, c := range g.cells {
		if c == Obstacle || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.position(queue[qi])
			comp = append(comp, u)
			buf = g.Neighbors(u, buf[:0])
			for _, v := range buf {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// 4-connected component. It stops as soon as b is reached.
// Complexity: O(size²) worst case.
func (g *Grid) Connected(a, b Position) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	queue := []Position{a}
	seen[g.index(a)] = true
	buf := make([]Position, 0, 4)
	for qi := 0; qi < len(queue); qi++ {
		buf = g.Neighbors(queue[qi], buf[:0])
		for _, v := range buf {
			if v == b {
				return true
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}
