package search

import "github.com/katalvlaran/pathbench/grid"

// dijkstraPolicy orders by accumulated cost and relaxes on strict improvement.
type dijkstraPolicy struct{}

func (dijkstraPolicy) key(_ grid.Position, g int) int { return g }

func (dijkstraPolicy) admit(t *tree, p grid.Position, g int) bool { return relaxes(t, p, g) }
