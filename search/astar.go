package search

import "github.com/katalvlaran/pathbench/grid"

// astarPolicy orders by g + Manhattan(p, goal). The heuristic is consistent
// on a 4-connected unit-cost grid, so the first finalization of the goal
// carries a shortest path.
type astarPolicy struct {
	goal grid.Position
}

func (a astarPolicy) key(p grid.Position, g int) int { return g + grid.Manhattan(p, a.goal) }

func (astarPolicy) admit(t *tree, p grid.Position, g int) bool { return relaxes(t, p, g) }
