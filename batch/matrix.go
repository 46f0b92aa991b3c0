package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/search"
)

// ErrEmptyMatrix indicates a matrix with an empty dimension or no trials.
var ErrEmptyMatrix = errors.New("batch: empty experiment matrix")

// DefaultAlgorithms are the variants compared by the stock presets.
var DefaultAlgorithms = []search.Algorithm{search.Dijkstra, search.AStar, search.Greedy}

// Matrix is the full experiment grid. Runs are enumerated
// size → density → type → trial → algorithm, outermost first.
type Matrix struct {
	Sizes      []int              `yaml:"sizes"`
	Densities  []float64          `yaml:"densities"`
	Types      []mapgen.Strategy  `yaml:"types"`
	Trials     int                `yaml:"trials"`
	Algorithms []search.Algorithm `yaml:"algorithms"`
}

// QuickMatrix is the short preset: two sizes, three densities, two map
// types and the given number of trials.
func QuickMatrix(trials int) Matrix {
	return Matrix{
		Sizes:      []int{50, 100},
		Densities:  []float64{0.1, 0.25, 0.4},
		Types:      []mapgen.Strategy{mapgen.Random, mapgen.Clustered},
		Trials:     trials,
		Algorithms: append([]search.Algorithm(nil), DefaultAlgorithms...),
	}
}

// FullMatrix is the complete preset: 5 sizes × 5 densities × 4 types × 100
// trials × 3 algorithms = 30 000 runs.
func FullMatrix() Matrix {
	return Matrix{
		Sizes:      []int{50, 100, 200, 400, 800},
		Densities:  []float64{0.1, 0.25, 0.4, 0.55, 0.7},
		Types:      append([]mapgen.Strategy(nil), mapgen.Strategies...),
		Trials:     100,
		Algorithms: append([]search.Algorithm(nil), DefaultAlgorithms...),
	}
}

// Validate checks every dimension before any work starts.
func (m Matrix) Validate() error {
	switch {
	case len(m.Sizes) == 0:
		return fmt.Errorf("Validate: no sizes: %w", ErrEmptyMatrix)
	case len(m.Densities) == 0:
		return fmt.Errorf("Validate: no densities: %w", ErrEmptyMatrix)
	case len(m.Types) == 0:
		return fmt.Errorf("Validate: no map types: %w", ErrEmptyMatrix)
	case len(m.Algorithms) == 0:
		return fmt.Errorf("Validate: no algorithms: %w", ErrEmptyMatrix)
	case m.Trials < 1:
		return fmt.Errorf("Validate: trials=%d: %w", m.Trials, ErrEmptyMatrix)
	}
	for _, s := range m.Sizes {
		if s < 1 {
			return fmt.Errorf("Validate: size=%d: %w", s, mapgen.ErrInvalidSize)
		}
	}
	for _, d := range m.Densities {
		if !(d >= 0 && d <= 1) {
			return fmt.Errorf("Validate: density=%g: %w", d, mapgen.ErrInvalidDensity)
		}
	}
	for _, t := range m.Types {
		if _, err := mapgen.ParseStrategy(t.String()); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}
	for _, a := range m.Algorithms {
		if _, err := a.MarshalText(); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}
	return nil
}

// Configs returns the number of (size, density, type, trial) instances.
func (m Matrix) Configs() int {
	return len(m.Sizes) * len(m.Densities) * len(m.Types) * m.Trials
}

// Total returns the number of runs, skipped instances included.
func (m Matrix) Total() int {
	return m.Configs() * len(m.Algorithms)
}
