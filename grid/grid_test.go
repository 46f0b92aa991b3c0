package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive sizes.
func TestNew_Errors(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		_, err := grid.New(size)
		if !errors.Is(err, grid.ErrInvalidSize) {
			t.Errorf("New(%d) error = %v; want ErrInvalidSize", size, err)
		}
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty or non-square inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]grid.Cell
		err  error
	}{
		{"EmptyRows", [][]grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Cell{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]grid.Cell{{0, 0}, {0}}, grid.ErrNonSquare},
		{"Rectangular", [][]grid.Cell{{0, 0, 0}, {0, 0, 0}}, grid.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_RoundTrip checks that String renders what Parse read.
func TestParse_RoundTrip(t *testing.T) {
	const text = "S.#\n.#.\n..E\n"
	g, err := grid.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, text, g.String())
	assert.Equal(t, grid.Start, g.At(grid.Position{Row: 0, Col: 0}))
	assert.Equal(t, grid.End, g.At(grid.Position{Row: 2, Col: 2}))
	assert.Equal(t, 2, g.ObstacleCount())

	_, err = grid.Parse("S.x\n...\n..E")
	assert.ErrorIs(t, err, grid.ErrUnknownCell)
}

//----------------------------------------------------------------------------//
// Neighbors and bounds
//----------------------------------------------------------------------------//

// TestNeighbors_OrderAndFiltering checks the fixed up/down/left/right order,
// bounds checking and obstacle exclusion.
func TestNeighbors_OrderAndFiltering(t *testing.T) {
	g, err := grid.Parse(`
		...
		.#.
		...`)
	require.NoError(t, err)

	got := g.Neighbors(grid.Position{Row: 1, Col: 0}, nil)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 0}}, got, "obstacle on the right is excluded")

	got = g.Neighbors(grid.Position{Row: 0, Col: 1}, nil)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, got, "up is out of bounds, down is an obstacle")

	got = g.Neighbors(grid.Position{Row: 2, Col: 2}, make([]grid.Position, 0, 4))
	assert.Equal(t, []grid.Position{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, got)
}

// TestInBoundsAndAt covers InBounds and the Obstacle default for At.
func TestInBoundsAndAt(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	for _, p := range []grid.Position{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 2}} {
		assert.True(t, g.InBounds(p), "%v", p)
	}
	for _, p := range []grid.Position{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: -1}} {
		assert.False(t, g.InBounds(p), "%v", p)
		assert.Equal(t, grid.Obstacle, g.At(p))
		assert.ErrorIs(t, g.Set(p, grid.Empty), grid.ErrOutOfBounds)
	}
}

//----------------------------------------------------------------------------//
// Endpoints, cloning, equality
//----------------------------------------------------------------------------//

// TestMarkEndpoints verifies validation and that earlier markers are cleared.
func TestMarkEndpoints(t *testing.T) {
	g, err := grid.Parse(`
		S.#
		...
		..E`)
	require.NoError(t, err)

	assert.ErrorIs(t, g.MarkEndpoints(grid.Position{Row: 0, Col: 2}, grid.Position{Row: 2, Col: 2}), grid.ErrBlockedCell)
	assert.ErrorIs(t, g.MarkEndpoints(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 3, Col: 3}), grid.ErrOutOfBounds)

	require.NoError(t, g.MarkEndpoints(grid.Position{Row: 1, Col: 0}, grid.Position{Row: 1, Col: 2}))
	assert.Equal(t, "..#\nS.E\n...\n", g.String())
}

// TestCloneEqual verifies that Clone is deep and Equal is cell-exact.
func TestCloneEqual(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.Position{Row: 1, Col: 1}, grid.Obstacle))

	c := g.Clone()
	assert.True(t, g.Equal(c))
	require.NoError(t, c.Set(grid.Position{Row: 2, Col: 2}, grid.Obstacle))
	assert.False(t, g.Equal(c))
	assert.Equal(t, 1, g.ObstacleCount())
	assert.InDelta(t, 1.0/16.0, g.Density(), 1e-12)
}

// TestManhattan covers symmetric absolute differences.
func TestManhattan(t *testing.T) {
	assert.Equal(t, 18, grid.Manhattan(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 9, Col: 9}))
	assert.Equal(t, 18, grid.Manhattan(grid.Position{Row: 9, Col: 9}, grid.Position{Row: 0, Col: 0}))
	assert.Equal(t, 0, grid.Manhattan(grid.Position{Row: 4, Col: 2}, grid.Position{Row: 4, Col: 2}))
	assert.Equal(t, 5, grid.Manhattan(grid.Position{Row: 3, Col: 0}, grid.Position{Row: 1, Col: 3}))
}

// TestPositionSet_Sorted checks row-major ordering of set snapshots.
func TestPositionSet_Sorted(t *testing.T) {
	s := grid.PositionSet{{Row: 2, Col: 0}: {}, {Row: 0, Col: 1}: {}, {Row: 0, Col: 0}: {}, {Row: 1, Col: 5}: {}}
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 5}, {Row: 2, Col: 0}}, s.Sorted())
	assert.True(t, s.Has(grid.Position{Row: 1, Col: 5}))
	assert.False(t, s.Has(grid.Position{Row: 5, Col: 1}))

	c := s.Clone()
	delete(c, grid.Position{Row: 0, Col: 0})
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, c.Len())
}
