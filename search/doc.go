// Package search implements four step-driven shortest-path engines over a
// 4-connected, uniform-cost grid: Dijkstra, A*, Greedy best-first and
// Bidirectional uniform-cost search.
//
// Every engine is a small state machine:
//
//	Active --Step()--> ... --> Found | Exhausted
//
// Step performs one frontier pop. A pop of an already finalized position is
// stale: it consumes the step, finalizes nothing, does not count toward
// Stats.NodesExplored and returns true. If that pop emptied the frontier, the
// next Step reports exhaustion. The goal is detected when it is finalized, not when
// it is discovered. Once terminal, Step is a no-op returning false and the
// engine state no longer changes.
//
// Frontiers are lazy-deletion binary heaps (container/heap). Ties are broken
// by (key, row, col), so runs are fully deterministic.
//
// Engines read the grid and never write it; each engine owns its own
// frontier, visited set and parent map, so many engines may share one grid
// concurrently as long as nobody mutates it.
//
// Record drives an engine to completion while keeping a per-step Replay,
// which is what an animation layer consumes.
//
// Complexity: O(V log V) time and O(V) memory per run for V grid cells.
package search
