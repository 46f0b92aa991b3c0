package search

import "github.com/katalvlaran/pathbench/grid"

// entry is one frontier record. Entries are never updated in place:
// an improved key is pushed as a new entry and the old one goes stale.
type entry struct {
	key int
	pos grid.Position
}

// frontier is a binary min-heap of entries ordered by (key, row, col).
// It implements container/heap.Interface.
type frontier []entry

// Len returns the number of entries, stale ones included.
func (f frontier) Len() int { return len(f) }

// Less orders by key, then row, then column.
func (f frontier) Less(i, j int) bool {
	if f[i].key != f[j].key {
		return f[i].key < f[j].key
	}
	return f[i].pos.Less(f[j].pos)
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
