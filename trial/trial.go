// Package trial runs one search engine to completion and turns its
// statistics into an immutable result record.
//
// A trial retains no per-step history and never mutates the grid it is
// given; the same grid and endpoints are meant to be shared by every
// algorithm of one benchmark configuration.
package trial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathbench/grid"
	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/search"
)

// ErrEngine wraps construction failures reported by the search package.
var ErrEngine = errors.New("trial: cannot construct engine")

// Outcome is the result of one algorithm on one problem instance.
type Outcome struct {
	Algorithm search.Algorithm
	Stats     search.Stats
}

// Meta identifies the problem instance an Outcome belongs to.
type Meta struct {
	Trial   int
	MapSize int
	Density float64
	MapType mapgen.Strategy
	Seed    int64
}

// Runner executes trials with a fixed set of engine options.
// The zero value is ready to use.
type Runner struct {
	engineOpts []search.Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithEngineOptions passes opts to every engine the Runner constructs.
func WithEngineOptions(opts ...search.Option) RunnerOption {
	return func(r *Runner) {
		r.engineOpts = append(r.engineOpts, opts...)
	}
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run constructs alg over g, steps it until it reports no more work and
// returns its final statistics.
//
// Errors: ErrEngine wrapping the search sentinel (nil grid, bad endpoint,
// unknown algorithm). An unreachable goal is not an error.
func (r *Runner) Run(alg search.Algorithm, g *grid.Grid, start, end grid.Position) (Outcome, error) {
	e, err := search.New(alg, g, start, end, r.engineOpts...)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrEngine, err)
	}
	for e.Step() {
	}
	return Outcome{Algorithm: alg, Stats: e.Stats()}, nil
}

// Run is Runner.Run on a zero-value Runner.
func Run(alg search.Algorithm, g *grid.Grid, start, end grid.Position) (Outcome, error) {
	var r Runner
	return r.Run(alg, g, start, end)
}

// Record combines o with its instance metadata.
func (o Outcome) Record(m Meta) Record {
	return Record{
		Trial:           m.Trial,
		MapSize:         m.MapSize,
		ObstacleDensity: m.Density,
		MapType:         m.MapType.String(),
		Algorithm:       o.Algorithm.String(),
		NodesExplored:   o.Stats.NodesExplored,
		PathLength:      o.Stats.PathLength,
		TimeMS:          o.Stats.ElapsedMS(),
		FoundPath:       o.Stats.Found,
		Seed:            m.Seed,
	}
}
