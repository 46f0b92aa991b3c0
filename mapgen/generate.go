package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathbench/grid"
)

// Method tags used for error context.
const (
	methodGenerate  = "Generate"
	methodRandom    = "Random"
	methodClustered = "Clustered"
	methodMaze      = "Maze"
	methodMixed     = "Mixed"
)

// fillFunc marks obstacles on an all-Empty grid using rng.
type fillFunc func(g *grid.Grid, density float64, rng *rand.Rand, cfg genConfig) error

// Generate builds a size×size obstacle map with the given strategy.
//
// Contract:
//   - size ≥ 1 (else ErrInvalidSize).
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity). Maze validates but ignores it.
//   - Same (strategy, size, density, seed, opts) ⇒ identical grid.
//   - The returned grid carries no Start/End markers; see Endpoints.
//
// Complexity: O(size²) for Random and Maze; O(size² + clusters·r²) for Clustered.
func Generate(strategy Strategy, size int, density float64, seed int64, opts ...Option) (*grid.Grid, error) {
	// 1) Validate parameters early; never clamp.
	if err := validate(size, density); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", methodGenerate, strategy, err)
	}
	cfg := newGenConfig(opts...)

	// 2) Dispatch. Mixed owns two streams; the rest share one.
	switch strategy {
	case Random:
		return generateWith(fillRandom, size, density, NewRand(seed), cfg)
	case Clustered:
		return generateWith(fillClustered, size, density, NewRand(seed), cfg)
	case Maze:
		return generateWith(fillMaze, size, density, NewRand(seed), cfg)
	case Mixed:
		return generateMixed(size, density, seed, cfg)
	default:
		return nil, fmt.Errorf("%s(%d): %w", methodGenerate, int(strategy), ErrUnknownStrategy)
	}
}

// validate checks the shared size/density domain.
func validate(size int, density float64) error {
	if size < 1 {
		return fmt.Errorf("size=%d: %w", size, ErrInvalidSize)
	}
	// NaN fails both comparisons, so test the accepted range positively.
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("density=%g not in [0,1]: %w", density, ErrInvalidDensity)
	}
	return nil
}

// generateWith allocates an empty grid and applies fill.
func generateWith(fill fillFunc, size int, density float64, rng *rand.Rand, cfg genConfig) (*grid.Grid, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	if err = fill(g, density, rng, cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// mustSet writes an in-bounds cell. Generators only address in-bounds
// positions, so an error here is a programming fault surfaced as error.
func mustSet(g *grid.Grid, p grid.Position, c grid.Cell, method string) error {
	if err := g.Set(p, c); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
