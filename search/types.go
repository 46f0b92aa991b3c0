// Package search defines the step-driven shortest-path engines over a grid.Grid.
//
// Engines:
//
//	– Dijkstra:      key = g (accumulated cost).
//	– A*:            key = g + Manhattan(p, goal).
//	– Greedy:        key = Manhattan(p, goal); first discovery fixes the parent.
//	– Bidirectional: two uniform-cost trees, alternating one unit of work each.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrUnknownAlgorithm if the Algorithm value is not one of the four above.
//	– ErrOutOfBounds      if start or end lies outside the grid.
//	– ErrBlockedEndpoint  if start or end is an Obstacle cell.
//	– ErrStepLimit        if Record exceeds its step budget.
package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/pathbench/grid"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the known set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOutOfBounds indicates that start or end is not inside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrBlockedEndpoint indicates that start or end is an Obstacle cell.
	ErrBlockedEndpoint = errors.New("search: endpoint is an obstacle")

	// ErrStepLimit indicates that Record ran out of steps before termination.
	ErrStepLimit = errors.New("search: step limit exceeded")
)

// Algorithm identifies a search variant.
type Algorithm int

const (
	// Dijkstra is uniform-cost search.
	Dijkstra Algorithm = iota
	// AStar is Dijkstra guided by the Manhattan heuristic.
	AStar
	// Greedy is heuristic-only best-first search (not cost-optimal).
	Greedy
	// Bidirectional runs uniform-cost search from both endpoints.
	Bidirectional
)

// Algorithms lists every variant in canonical order.
var Algorithms = []Algorithm{Dijkstra, AStar, Greedy, Bidirectional}

var algorithmNames = [...]string{
	Dijkstra:      "Dijkstra",
	AStar:         "A*",
	Greedy:        "Greedy",
	Bidirectional: "Bidirectional",
}

// String returns the display name used in result tables ("A*" for AStar).
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

func (a Algorithm) valid() bool { return a >= 0 && int(a) < len(algorithmNames) }

// ParseAlgorithm resolves a display name case-insensitively.
// "astar" and "a-star" are accepted as aliases of "A*".
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "astar", "a-star", "a_star":
		return AStar, nil
	}
	for i, n := range algorithmNames {
		if strings.ToLower(n) == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(a), ErrUnknownAlgorithm)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// State is the lifecycle stage of an engine.
type State int

const (
	// Active means the search has not terminated and Step may make progress.
	Active State = iota
	// Found means the goal (or a meeting point) was finalized.
	Found
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether s is Found or Exhausted.
func (s State) Terminal() bool { return s == Found || s == Exhausted }

// Stats summarizes one search.
//
// NodesExplored counts finalized positions only; stale heap entries never count.
// A position finalized by both bidirectional trees counts once.
// PathLength is the number of cells on the path (0 when not found).
// Elapsed runs from construction to termination and is zero while Active.
type Stats struct {
	NodesExplored int
	PathLength    int
	Elapsed       time.Duration
	Found         bool
}

// ElapsedMS returns Elapsed in fractional milliseconds.
func (s Stats) ElapsedMS() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// Options configures engine construction.
type Options struct {
	// Clock supplies timestamps for Stats.Elapsed. Default time.Now.
	Clock func() time.Time

	// OnFinalize is called once per finalized position, in finalization order.
	OnFinalize func(p grid.Position)
}

// Option represents a functional option for New.
type Option func(*Options)

// WithClock overrides the time source. Panics on nil.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("search: WithClock(nil)")
	}
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithOnFinalize registers a hook fired whenever a position is finalized.
// Panics on nil.
func WithOnFinalize(fn func(p grid.Position)) Option {
	if fn == nil {
		panic("search: WithOnFinalize(nil)")
	}
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// DefaultOptions returns Options with time.Now and a no-op finalize hook.
func DefaultOptions() Options {
	return Options{
		Clock:      time.Now,
		OnFinalize: func(grid.Position) {},
	}
}
