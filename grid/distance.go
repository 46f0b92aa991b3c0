package grid

// Distances runs a breadth-first search from src over passable cells and
// returns the 4-connected step distance to every reachable cell, src
// included at 0. An impassable src yields an empty map.
//
// Complexity: O(size²) time and space.
func (g *Grid) Distances(src Position) map[Position]int {
	dist := make(map[Position]int)
	if !g.Passable(src) {
		return dist
	}
	dist[src] = 0
	queue := []Position{src}
	var buf []Position
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		buf = g.Neighbors(cur, buf[:0])
		for _, nb := range buf {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}
	return dist
}

// ShortestPathLength returns the number of cells on a shortest path from a
// to b, endpoints included, or ok=false when b is unreachable.
func (g *Grid) ShortestPathLength(a, b Position) (cells int, ok bool) {
	if !g.Passable(b) {
		return 0, false
	}
	d, ok := g.Distances(a)[b]
	if !ok {
		return 0, false
	}
	return d + 1, true
}
