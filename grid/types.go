// Package grid defines core types and sentinel errors for square
// obstacle maps used by the search engines.
package grid

import (
	"errors"
	"sort"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a requested size below 1.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrEmptyGrid indicates input rows are empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonSquare indicates rows of differing lengths or a row count that differs from the column count.
	ErrNonSquare = errors.New("grid: rows must form a square matrix")
	// ErrUnknownCell indicates an unrecognized cell marker in textual input.
	ErrUnknownCell = errors.New("grid: unknown cell marker")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBlockedCell indicates an endpoint placed on an obstacle.
	ErrBlockedCell = errors.New("grid: position is an obstacle")
)

// Cell is a single grid marker.
type Cell uint8

const (
	// Empty is a free, traversable cell.
	Empty Cell = iota
	// Obstacle blocks movement.
	Obstacle
	// Start marks the search origin. Traversable.
	Start
	// End marks the search goal. Traversable.
	End
)

// String returns the single-rune textual marker of c.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Obstacle:
		return "#"
	case Start:
		return "S"
	case End:
		return "E"
	default:
		return "?"
	}
}

// Position is a (Row, Col) coordinate. Valid iff 0 ≤ Row,Col < size.
type Position struct {
	Row, Col int
}

// Less orders positions row-major. Used for deterministic tie-breaking.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Complexity: O(1).
func Manhattan(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// offsets4 is the fixed 4-connected neighbor order: up, down, left, right.
var offsets4 = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// PositionSet is an unordered set of positions.
type PositionSet map[Position]struct{}

// Has reports whether p is in the set.
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int { return len(s) }

// Sorted returns the positions in row-major order.
// Complexity: O(n log n).
func (s PositionSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns an independent copy of s.
func (s PositionSet) Clone() PositionSet {
	out := make(PositionSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}
