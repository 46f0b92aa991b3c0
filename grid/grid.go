// Cells are stored row-major in a flat slice. Obstacle cells are
// impassable; Empty, Start and End are passable at uniform cost.

package grid

import (
	"fmt"
	"strings"
)

// Grid is a size×size matrix of cell markers.
// Search engines treat a Grid as read-only.
type Grid struct {
	size  int
	cells []Cell
}

// New constructs an all-Empty grid of the given size.
// Returns ErrInvalidSize if size < 1.
// Complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("New: size=%d: %w", size, ErrInvalidSize)
	}
	return &Grid{size: size, cells: make([]Cell, size*size)}, nil
}

// FromRows constructs a Grid from a non-empty, square 2D slice.
// It deep-copies the input.
// Returns ErrEmptyGrid for empty input, ErrNonSquare otherwise malformed.
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	g := &Grid{size: n, cells: make([]Cell, n*n)}
	for r := 0; r < n; r++ {
		copy(g.cells[r*n:(r+1)*n], rows[r])
	}
	return g, nil
}

// Parse builds a Grid from lines of '.', '#', 'S' and 'E'.
// Blank lines and surrounding whitespace are ignored.
func Parse(text string) (*Grid, error) {
	var rows [][]Cell
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.':
				row = append(row, Empty)
			case '#':
				row = append(row, Obstacle)
			case 'S':
				row = append(row, Start)
			case 'E':
				row = append(row, End)
			default:
				return nil, fmt.Errorf("Parse: %q: %w", ch, ErrUnknownCell)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// index maps p to its row-major offset. Caller guarantees InBounds.
func (g *Grid) index(p Position) int {
	return p.Row*g.size + p.Col
}

// position converts a row-major offset back to a Position.
func (g *Grid) position(i int) Position {
	return Position{Row: i / g.size, Col: i % g.size}
}

// At returns the cell at p. Out-of-bounds positions read as Obstacle.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[g.index(p)]
}

// Set writes c at p. Returns ErrOutOfBounds for invalid positions.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("Set(%d,%d): %w", p.Row, p.Col, ErrOutOfBounds)
	}
	g.cells[g.index(p)] = c
	return nil
}

// Passable reports whether p is in bounds and not an Obstacle.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != Obstacle
}

// Neighbors appends the passable 4-connected neighbors of p to buf and
// returns it. Order is fixed: up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position, buf []Position) []Position {
	for _, d := range offsets4 {
		q := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.Passable(q) {
			buf = append(buf, q)
		}
	}
	return buf
}

// MarkEndpoints clears previous Start/End markers and places new ones.
// Both positions must be in bounds and not Obstacle.
func (g *Grid) MarkEndpoints(start, end Position) error {
	for _, p := range []Position{start, end} {
		if !g.InBounds(p) {
			return fmt.Errorf("MarkEndpoints(%d,%d): %w", p.Row, p.Col, ErrOutOfBounds)
		}
		if g.cells[g.index(p)] == Obstacle {
			return fmt.Errorf("MarkEndpoints(%d,%d): %w", p.Row, p.Col, ErrBlockedCell)
		}
	}
	for i, c := range g.cells {
		if c == Start || c == End {
			g.cells[i] = Empty
		}
	}
	g.cells[g.index(start)] = Start
	g.cells[g.index(end)] = End
	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether g and o have identical size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// ObstacleCount returns the number of Obstacle cells.
func (g *Grid) ObstacleCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Obstacle {
			n++
		}
	}
	return n
}

// Density returns the fraction of cells that are Obstacle.
func (g *Grid) Density() float64 {
	return float64(g.ObstacleCount()) / float64(len(g.cells))
}

// String renders the grid one row per line using Cell markers.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r := 0; r < g.size; r++ {
		for _, c := range g.cells[r*g.size : (r+1)*g.size] {
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
