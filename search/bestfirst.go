package search

import "github.com/katalvlaran/pathbench/grid"

// policy customizes single-tree best-first search.
type policy interface {
	// key is the frontier priority for p reached at cost g.
	key(p grid.Position, g int) int

	// admit decides whether reaching p at cost g should update the tree.
	admit(t *tree, p grid.Position, g int) bool
}

// bestFirst is one tree expanded in key order. Dijkstra, A* and Greedy
// differ only in their policy.
type bestFirst struct {
	base
	pol policy
	t   *tree
}

func newBestFirst(b base, pol policy) *bestFirst {
	capHint := b.g.Size()
	return &bestFirst{
		base: b,
		pol:  pol,
		t:    newTree(b.start, pol.key(b.start, 0), capHint),
	}
}

// Step pops one frontier entry. A stale entry is discarded without
// counting and Step still reports true. A fresh entry is finalized; the goal ends the search, any
// other position has its unvisited neighbors offered to the policy.
func (e *bestFirst) Step() bool {
	if e.state != Active {
		return false
	}
	if e.t.empty() {
		e.terminate(Exhausted, nil)
		return false
	}

	// 1) Pop; stale entries cost a step but no exploration. Exhaustion
	// after a stale pop is reported by the next call.
	cur, fresh := e.t.pop()
	if !fresh {
		return true
	}

	// 2) Finalize.
	e.t.finalize(cur)
	e.finalized(cur)

	// 3) Goal reached on finalization, never on discovery.
	if cur == e.end {
		e.terminate(Found, reversed(e.t.chain(cur)))
		return false
	}

	// 4) Expand.
	g := e.t.dist[cur] + 1
	e.nbuf = e.g.Neighbors(cur, e.nbuf[:0])
	for _, nb := range e.nbuf {
		if e.t.visited.Has(nb) {
			continue
		}
		if e.pol.admit(e.t, nb, g) {
			e.t.link(nb, cur, g, e.pol.key(nb, g))
		}
	}

	return e.continueOrExhaust()
}

func (e *bestFirst) continueOrExhaust() bool {
	if e.t.empty() {
		e.terminate(Exhausted, nil)
		return false
	}
	return true
}

// Visited returns a copy of the finalized set.
func (e *bestFirst) Visited() grid.PositionSet { return e.t.visited.Clone() }

// Parent returns the predecessor of p toward start.
func (e *bestFirst) Parent(p grid.Position) (grid.Position, bool) {
	q, ok := e.t.parent[p]
	return q, ok
}

// relaxes is the shared "strictly better cost" admission rule.
func relaxes(t *tree, p grid.Position, g int) bool {
	old, seen := t.dist[p]
	return !seen || g < old
}

// reversed reverses s in place and returns it.
func reversed(s []grid.Position) []grid.Position {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}
