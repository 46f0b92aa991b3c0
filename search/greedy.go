package search

import "github.com/katalvlaran/pathbench/grid"

// greedyPolicy orders by Manhattan(p, goal) alone.
//
// The first discovery of a position fixes its parent for good; a cheaper
// route found later is ignored. This keeps Greedy the non-optimal baseline.
type greedyPolicy struct {
	goal grid.Position
}

func (gp greedyPolicy) key(p grid.Position, _ int) int { return grid.Manhattan(p, gp.goal) }

func (greedyPolicy) admit(t *tree, p grid.Position, _ int) bool {
	if p == t.root {
		return false
	}
	_, discovered := t.parent[p]
	return !discovered
}
