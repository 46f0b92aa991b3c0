package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathbench/grid"
)

// Engine is a single step-driven search attempt over a fixed grid and
// endpoint pair. Engines never mutate their grid. An Engine is not safe for
// concurrent use; drive it from one goroutine.
//
// The interface is closed: only this package provides implementations.
type Engine interface {
	// Step performs one unit of work and reports whether more remains.
	// A stale frontier pop is a step that finalizes nothing and returns true.
	// After termination Step is a no-op returning false.
	Step() bool

	// Visited returns a copy of the finalized positions.
	Visited() grid.PositionSet

	// Path returns the route start..end inclusive, or nil when not found.
	Path() []grid.Position

	// Stats returns the counters at the current instant.
	Stats() Stats

	// State returns Active, Found or Exhausted.
	State() State

	// Algorithm identifies the variant.
	Algorithm() Algorithm

	// Parent returns the forward (start-rooted) predecessor of p.
	Parent(p grid.Position) (grid.Position, bool)

	// Current returns the most recently finalized position.
	Current() (grid.Position, bool)

	sealed()
}

// New constructs the engine for alg over g from start to end.
//
// Validation order: ErrNilGrid, ErrUnknownAlgorithm, ErrOutOfBounds,
// ErrBlockedEndpoint. Start and End markers are passable; only Obstacle
// cells block. Connectivity is not checked: an unreachable goal ends in
// Exhausted.
//
// Complexity: O(1) to construct; a full run is O(V log V) for V cells.
func New(alg Algorithm, g *grid.Grid, start, end grid.Position, opts ...Option) (Engine, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !alg.valid() {
		return nil, fmt.Errorf("New(%d): %w", int(alg), ErrUnknownAlgorithm)
	}
	for _, p := range [2]grid.Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("New(%s): (%d,%d): %w", alg, p.Row, p.Col, ErrOutOfBounds)
		}
		if !g.Passable(p) {
			return nil, fmt.Errorf("New(%s): (%d,%d): %w", alg, p.Row, p.Col, ErrBlockedEndpoint)
		}
	}

	// 3) Dispatch.
	b := newBase(alg, g, start, end, cfg)
	switch alg {
	case Dijkstra:
		return newBestFirst(b, dijkstraPolicy{}), nil
	case AStar:
		return newBestFirst(b, astarPolicy{goal: end}), nil
	case Greedy:
		return newBestFirst(b, greedyPolicy{goal: end}), nil
	default:
		return newBidirectional(b), nil
	}
}

// base carries what every variant shares: inputs, lifecycle and counters.
type base struct {
	alg   Algorithm
	g     *grid.Grid
	start grid.Position
	end   grid.Position
	cfg   Options

	state    State
	explored int
	current  grid.Position
	hasCur   bool

	startedAt time.Time
	elapsed   time.Duration

	path []grid.Position // cached once Found
	nbuf []grid.Position // neighbor scratch
}

func newBase(alg Algorithm, g *grid.Grid, start, end grid.Position, cfg Options) base {
	return base{
		alg:       alg,
		g:         g,
		start:     start,
		end:       end,
		cfg:       cfg,
		state:     Active,
		startedAt: cfg.Clock(),
		nbuf:      make([]grid.Position, 0, 4),
	}
}

func (b *base) sealed() {}

// Algorithm identifies the variant.
func (b *base) Algorithm() Algorithm { return b.alg }

// State returns the lifecycle stage.
func (b *base) State() State { return b.state }

// Current returns the most recently finalized position.
func (b *base) Current() (grid.Position, bool) { return b.current, b.hasCur }

// Path returns a copy of the route, or nil.
func (b *base) Path() []grid.Position {
	if b.state != Found {
		return nil
	}
	out := make([]grid.Position, len(b.path))
	copy(out, b.path)
	return out
}

// Stats returns the counters at the current instant.
func (b *base) Stats() Stats {
	return Stats{
		NodesExplored: b.explored,
		PathLength:    len(b.path),
		Elapsed:       b.elapsed,
		Found:         b.state == Found,
	}
}

// finalized counts p and fires the hook.
func (b *base) finalized(p grid.Position) {
	b.explored++
	b.current, b.hasCur = p, true
	b.cfg.OnFinalize(p)
}

// terminate fixes the terminal state and stops the clock.
func (b *base) terminate(s State, path []grid.Position) {
	b.state = s
	b.path = path
	b.elapsed = b.cfg.Clock().Sub(b.startedAt)
}
