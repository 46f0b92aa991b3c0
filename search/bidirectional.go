package search

import "github.com/katalvlaran/pathbench/grid"

// bidirectional runs a forward tree from start and a backward tree from end.
//
// Each Step performs one unit of work in the direction whose turn it is and
// then hands the turn over. A direction with an empty frontier passes its
// turn to the other within the same Step. Finalizing a position that the
// other tree has already finalized records the meeting point and ends the
// search; the meeting point counts once toward NodesExplored, so the
// counter always equals the size of Visited.
type bidirectional struct {
	base
	fwd, bwd    *tree
	forwardTurn bool
	meeting     grid.Position
	met         bool
}

func newBidirectional(b base) *bidirectional {
	capHint := b.g.Size()
	return &bidirectional{
		base:        b,
		fwd:         newTree(b.start, 0, capHint),
		bwd:         newTree(b.end, 0, capHint),
		forwardTurn: true,
	}
}

// Step performs one pop in one direction. See bidirectional.
func (e *bidirectional) Step() bool {
	if e.state != Active {
		return false
	}
	if e.fwd.empty() && e.bwd.empty() {
		e.terminate(Exhausted, nil)
		return false
	}
	if e.turnTree().empty() {
		e.forwardTurn = !e.forwardTurn
	}

	own, other := e.turnTree(), e.otherTree()
	cur, fresh := own.pop()
	if !fresh {
		e.forwardTurn = !e.forwardTurn
		return true
	}

	own.finalize(cur)
	if other.visited.Has(cur) {
		// Already counted when the other tree finalized it.
		e.current, e.hasCur = cur, true
		e.meeting, e.met = cur, true
		e.terminate(Found, e.joinAt(cur))
		return false
	}
	e.finalized(cur)
	e.expand(own, cur)

	e.forwardTurn = !e.forwardTurn
	if e.fwd.empty() && e.bwd.empty() {
		e.terminate(Exhausted, nil)
		return false
	}
	return true
}

// expand relaxes the unvisited neighbors of cur in t with unit cost.
func (e *bidirectional) expand(t *tree, cur grid.Position) {
	g := t.dist[cur] + 1
	e.nbuf = e.g.Neighbors(cur, e.nbuf[:0])
	for _, nb := range e.nbuf {
		if t.visited.Has(nb) {
			continue
		}
		if relaxes(t, nb, g) {
			t.link(nb, cur, g, g)
		}
	}
}

// joinAt builds start..m from the forward tree and appends the backward
// chain after m, so m appears exactly once.
func (e *bidirectional) joinAt(m grid.Position) []grid.Position {
	head := reversed(e.fwd.chain(m))
	tail := e.bwd.chain(m)[1:]

	return append(head, tail...)
}

func (e *bidirectional) turnTree() *tree {
	if e.forwardTurn {
		return e.fwd
	}
	return e.bwd
}

func (e *bidirectional) otherTree() *tree {
	if e.forwardTurn {
		return e.bwd
	}
	return e.fwd
}

// Visited returns the union of both finalized sets.
func (e *bidirectional) Visited() grid.PositionSet {
	out := e.fwd.visited.Clone()
	for p := range e.bwd.visited {
		out[p] = struct{}{}
	}
	return out
}

// Parent returns the forward predecessor of p.
func (e *bidirectional) Parent(p grid.Position) (grid.Position, bool) {
	q, ok := e.fwd.parent[p]
	return q, ok
}

// MeetingPoint returns the position where the trees met.
// ok is false unless the search ended Found.
func (e *bidirectional) MeetingPoint() (grid.Position, bool) {
	return e.meeting, e.met
}

// MeetingPointer is implemented by engines that join two trees.
type MeetingPointer interface {
	MeetingPoint() (grid.Position, bool)
}
