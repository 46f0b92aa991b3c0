// SPDX-License-Identifier: MIT
// Package: pathbench/mapgen
//
// impl_maze.go - recursive-division corridor maze.
//
// Canonical model:
//   - Start from an open grid and divide the rectangle [0,n-1]×[0,n-1].
//   - A rectangle whose row span or column span (hi-lo) is below 3 is a leaf.
//   - Otherwise pick horizontal or vertical with probability 1/2, draw a wall
//     across the rectangle with exactly one gap, and recurse into both sides
//     (first the lower-index side, then the other).
//   - Walls sit on even coordinates and gaps on odd coordinates. A later
//     wall therefore never lands on the cell next to an earlier gap, and the
//     open cells stay one 4-connected component.
//   - The outer border rows and columns are never wall lines, so the four
//     corners are always open.
//   - density is ignored: the maze is walls only.
//
// Complexity:
//   - Time: O(size² ) cell writes overall. Space: O(size) recursion depth.

package mapgen

import (
	"math/rand"

	"github.com/katalvlaran/pathbench/grid"
)

// mazeDivider carries the grid and stream through the recursion.
type mazeDivider struct {
	g   *grid.Grid
	rng *rand.Rand
}

func fillMaze(g *grid.Grid, _ float64, rng *rand.Rand, _ genConfig) error {
	d := mazeDivider{g: g, rng: rng}
	n := g.Size()
	return d.divide(0, 0, n-1, n-1)
}

// divide splits the inclusive rectangle rows [r0,r1] × cols [c0,c1].
func (d mazeDivider) divide(r0, c0, r1, c1 int) error {
	if r1-r0 < mazeMinSpan || c1-c0 < mazeMinSpan {
		return nil
	}

	if d.rng.Float64() < 0.5 {
		// Horizontal wall on an even row strictly inside, gap on an odd column.
		wall, ok := pickEven(d.rng, r0+1, r1-1)
		if !ok {
			return nil
		}
		gap, ok := pickOdd(d.rng, c0, c1)
		if !ok {
			return nil
		}
		for c := c0; c <= c1; c++ {
			if c == gap {
				continue
			}
			if err := mustSet(d.g, grid.Position{Row: wall, Col: c}, grid.Obstacle, methodMaze); err != nil {
				return err
			}
		}
		if err := d.divide(r0, c0, wall-1, c1); err != nil {
			return err
		}
		return d.divide(wall+1, c0, r1, c1)
	}

	// Vertical wall on an even column strictly inside, gap on an odd row.
	wall, ok := pickEven(d.rng, c0+1, c1-1)
	if !ok {
		return nil
	}
	gap, ok := pickOdd(d.rng, r0, r1)
	if !ok {
		return nil
	}
	for r := r0; r <= r1; r++ {
		if r == gap {
			continue
		}
		if err := mustSet(d.g, grid.Position{Row: r, Col: wall}, grid.Obstacle, methodMaze); err != nil {
			return err
		}
	}
	if err := d.divide(r0, c0, r1, wall-1); err != nil {
		return err
	}
	return d.divide(r0, wall+1, r1, c1)
}

// pickEven draws a uniform even integer in [lo, hi].
func pickEven(rng *rand.Rand, lo, hi int) (int, bool) {
	first := lo
	if first%2 != 0 {
		first++
	}
	if first > hi {
		return 0, false
	}
	return first + 2*rng.Intn((hi-first)/2+1), true
}

// pickOdd draws a uniform odd integer in [lo, hi].
func pickOdd(rng *rand.Rand, lo, hi int) (int, bool) {
	first := lo
	if first%2 == 0 {
		first++
	}
	if first > hi {
		return 0, false
	}
	return first + 2*rng.Intn((hi-first)/2+1), true
}
