// SPDX-License-Identifier: MIT
// Package: pathbench/mapgen
//
// impl_random.go - independent Bernoulli obstacles.
//
// Canonical model:
//   - Each cell becomes Obstacle iff rng.Float64() < density.
//   - Trial order is row-major (r asc, c asc), one draw per cell, so the
//     outcome for a fixed seed does not depend on anything but size.
//
// Complexity:
//   - Time: O(size²) draws. Space: O(1) extra.

package mapgen

import (
	"math/rand"

	"github.com/katalvlaran/pathbench/grid"
)

func fillRandom(g *grid.Grid, density float64, rng *rand.Rand, _ genConfig) error {
	n := g.Size()
	var p grid.Position
	for p.Row = 0; p.Row < n; p.Row++ {
		for p.Col = 0; p.Col < n; p.Col++ {
			if rng.Float64() < density {
				if err := mustSet(g, p, grid.Obstacle, methodRandom); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
