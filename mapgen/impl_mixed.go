// SPDX-License-Identifier: MIT
// Package: pathbench/mapgen
//
// impl_mixed.go - union of a Random and a Clustered map.
//
// Canonical model:
//   - primary   = Random(size, density/2) on stream NewRand(seed).
//   - secondary = Clustered(size, density/2) on stream NewRand(seed+1).
//   - A cell is Obstacle iff it is Obstacle in either component.
//
// Complexity:
//   - Time: O(size² + clusters·r²). Space: O(size²) for the second grid.

package mapgen

import (
	"fmt"

	"github.com/katalvlaran/pathbench/grid"
)

func generateMixed(size int, density float64, seed int64, cfg genConfig) (*grid.Grid, error) {
	half := density / 2

	primary, err := generateWith(fillRandom, size, half, NewRand(seed), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMixed, err)
	}
	secondary, err := generateWith(fillClustered, size, half, NewRand(seed+mixedSecondaryOffset), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMixed, err)
	}

	var p grid.Position
	for p.Row = 0; p.Row < size; p.Row++ {
		for p.Col = 0; p.Col < size; p.Col++ {
			if secondary.At(p) != grid.Obstacle {
				continue
			}
			if err = mustSet(primary, p, grid.Obstacle, methodMixed); err != nil {
				return nil, err
			}
		}
	}
	return primary, nil
}
