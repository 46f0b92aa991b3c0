// SPDX-License-Identifier: MIT
// Package: pathbench/mapgen
//
// impl_clustered.go - blob obstacles.
//
// Canonical model:
//   - clusters = ⌊size²·density / 10⌋.
//   - For each cluster: centre row, centre col uniform in [0,size-1]
//     (in that draw order), radius uniform in [rmin,rmax].
//   - Every in-bounds cell of the half-open box [c-r, c+r) × [c-r, c+r)
//     becomes Obstacle with probability fill. Out-of-bounds cells consume
//     no draw. Overlaps accumulate; nothing is ever cleared.
//
// Complexity:
//   - Time: O(size² + clusters·(2·rmax)²). Space: O(1) extra.

package mapgen

import (
	"math/rand"

	"github.com/katalvlaran/pathbench/grid"
)

func fillClustered(g *grid.Grid, density float64, rng *rand.Rand, cfg genConfig) error {
	n := g.Size()
	clusters := int(float64(n*n) * density / clusterAreaDivisor)

	for k := 0; k < clusters; k++ {
		centerRow := intInclusive(rng, 0, n-1)
		centerCol := intInclusive(rng, 0, n-1)
		radius := intInclusive(rng, cfg.clusterRadiusMin, cfg.clusterRadiusMax)

		var p grid.Position
		for p.Row = centerRow - radius; p.Row < centerRow+radius; p.Row++ {
			for p.Col = centerCol - radius; p.Col < centerCol+radius; p.Col++ {
				if !g.InBounds(p) {
					continue
				}
				if rng.Float64() < cfg.clusterFill {
					if err := mustSet(g, p, grid.Obstacle, methodClustered); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
