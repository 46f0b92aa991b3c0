package mapgen

import "github.com/katalvlaran/pathbench/grid"

// Endpoints picks a start and end position for g.
//
// Rule:
//  1. Collect the free corners in the order (0,0), (0,n-1), (n-1,0), (n-1,n-1).
//     With two or more, start is the first and end the last.
//  2. Otherwise scan all cells row-major; with two or more free cells,
//     start is the first and end the last.
//  3. Otherwise ok is false.
//
// Obstacles and markers are read with At; only Obstacle counts as blocked.
// Connectivity is not checked: the pair may be unreachable.
//
// Complexity: O(1) when corners suffice, else O(size²).
func Endpoints(g *grid.Grid) (start, end grid.Position, ok bool) {
	if g == nil || g.Size() == 0 {
		return grid.Position{}, grid.Position{}, false
	}
	n := g.Size()
	corners := [...]grid.Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: n - 1},
		{Row: n - 1, Col: 0},
		{Row: n - 1, Col: n - 1},
	}

	free := make([]grid.Position, 0, len(corners))
	for _, c := range corners {
		if g.At(c) != grid.Obstacle {
			free = append(free, c)
		}
	}
	// A 1×1 grid lists the same corner four times; require distinct cells.
	if len(free) >= 2 && free[0] != free[len(free)-1] {
		return free[0], free[len(free)-1], true
	}

	first, last, count := grid.Position{}, grid.Position{}, 0
	var p grid.Position
	for p.Row = 0; p.Row < n; p.Row++ {
		for p.Col = 0; p.Col < n; p.Col++ {
			if g.At(p) == grid.Obstacle {
				continue
			}
			if count == 0 {
				first = p
			}
			last = p
			count++
		}
	}
	if count < 2 {
		return grid.Position{}, grid.Position{}, false
	}
	return first, last, true
}
