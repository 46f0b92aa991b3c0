package search

import (
	"container/heap"

	"github.com/katalvlaran/pathbench/grid"
)

// tree is the mutable state of one search direction.
type tree struct {
	root    grid.Position                   // where the search starts
	open    frontier                        // lazy-deletion heap
	visited grid.PositionSet                // finalized positions
	dist    map[grid.Position]int           // best known cost from root
	parent  map[grid.Position]grid.Position // predecessor toward root
}

// newTree seeds a tree with root at cost 0 and the given key.
func newTree(root grid.Position, rootKey int, capHint int) *tree {
	t := &tree{
		root:    root,
		open:    make(frontier, 0, capHint),
		visited: make(grid.PositionSet, capHint),
		dist:    make(map[grid.Position]int, capHint),
		parent:  make(map[grid.Position]grid.Position, capHint),
	}
	t.dist[root] = 0
	heap.Init(&t.open)
	heap.Push(&t.open, entry{key: rootKey, pos: root})

	return t
}

// pop removes the minimum entry. fresh is false for stale entries,
// whose position is already finalized.
func (t *tree) pop() (pos grid.Position, fresh bool) {
	it := heap.Pop(&t.open).(entry)
	return it.pos, !t.visited.Has(it.pos)
}

// finalize moves p into the visited set.
func (t *tree) finalize(p grid.Position) {
	t.visited[p] = struct{}{}
}

// link records p as reached from via at cost g and enqueues it under key.
func (t *tree) link(p, via grid.Position, g, key int) {
	t.dist[p] = g
	t.parent[p] = via
	heap.Push(&t.open, entry{key: key, pos: p})
}

// empty reports whether the frontier holds no entries.
func (t *tree) empty() bool { return t.open.Len() == 0 }

// chain returns the positions from p back to root, p first.
func (t *tree) chain(p grid.Position) []grid.Position {
	out := []grid.Position{p}
	for p != t.root {
		next, ok := t.parent[p]
		if !ok {
			break
		}
		out = append(out, next)
		p = next
	}
	return out
}
