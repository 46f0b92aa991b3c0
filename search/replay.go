package search

import (
	"fmt"

	"github.com/katalvlaran/pathbench/grid"
)

// Frame is the outcome of one Step call during a recording.
type Frame struct {
	Index     int             // 0-based Step call number
	Finalized []grid.Position // positions finalized by this call (empty on a stale pop)
	State     State           // engine state after the call
}

// Replay is a step-by-step recording of one search, used to animate or
// inspect how a variant grows its visited region.
type Replay struct {
	Algorithm Algorithm
	Frames    []Frame
	Path      []grid.Position
	Stats     Stats
}

// Record drives e to termination, keeping one Frame per Step call.
//
// maxSteps ≤ 0 means no limit. When the limit is hit while e is still
// Active, the partial replay is returned together with ErrStepLimit.
//
// Complexity: O(steps) frames; each frame stores at most one position.
func Record(e Engine, maxSteps int) (*Replay, error) {
	rp := &Replay{Algorithm: e.Algorithm()}

	for i := 0; e.State() == Active; i++ {
		if maxSteps > 0 && i >= maxSteps {
			rp.Stats = e.Stats()
			return rp, fmt.Errorf("Record(%s): %d steps: %w", e.Algorithm(), maxSteps, ErrStepLimit)
		}

		before := e.Stats().NodesExplored
		e.Step()

		f := Frame{Index: i, State: e.State()}
		if e.Stats().NodesExplored > before {
			if p, ok := e.Current(); ok {
				f.Finalized = []grid.Position{p}
			}
		}
		rp.Frames = append(rp.Frames, f)
	}

	rp.Path = e.Path()
	rp.Stats = e.Stats()
	return rp, nil
}

// Len returns the number of frames.
func (r *Replay) Len() int { return len(r.Frames) }

// VisitedAt returns the cumulative finalized set after frame i.
// i is clamped to [0, Len()-1]; an empty replay yields an empty set.
func (r *Replay) VisitedAt(i int) grid.PositionSet {
	out := make(grid.PositionSet)
	if len(r.Frames) == 0 {
		return out
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.Frames) {
		i = len(r.Frames) - 1
	}
	for _, f := range r.Frames[:i+1] {
		for _, p := range f.Finalized {
			out[p] = struct{}{}
		}
	}
	return out
}
