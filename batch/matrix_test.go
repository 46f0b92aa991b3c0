package batch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathbench/batch"
	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/search"
)

func TestPresets(t *testing.T) {
	t.Parallel()
	q := batch.QuickMatrix(5)
	assert.NoError(t, q.Validate())
	assert.Equal(t, 60, q.Configs())
	assert.Equal(t, 180, q.Total())

	f := batch.FullMatrix()
	assert.NoError(t, f.Validate())
	assert.Equal(t, 30000, f.Total())
	assert.Equal(t, mapgen.Strategies, f.Types)
}

func TestMatrix_Validate(t *testing.T) {
	t.Parallel()
	base := func() batch.Matrix { return batch.QuickMatrix(2) }
	tests := []struct {
		name   string
		mutate func(*batch.Matrix)
		want   error
	}{
		{"no sizes", func(m *batch.Matrix) { m.Sizes = nil }, batch.ErrEmptyMatrix},
		{"no densities", func(m *batch.Matrix) { m.Densities = nil }, batch.ErrEmptyMatrix},
		{"no types", func(m *batch.Matrix) { m.Types = nil }, batch.ErrEmptyMatrix},
		{"no algorithms", func(m *batch.Matrix) { m.Algorithms = nil }, batch.ErrEmptyMatrix},
		{"zero trials", func(m *batch.Matrix) { m.Trials = 0 }, batch.ErrEmptyMatrix},
		{"bad size", func(m *batch.Matrix) { m.Sizes = []int{50, 0} }, mapgen.ErrInvalidSize},
		{"bad density", func(m *batch.Matrix) { m.Densities = []float64{math.NaN()} }, mapgen.ErrInvalidDensity},
		{"bad type", func(m *batch.Matrix) { m.Types = []mapgen.Strategy{9} }, mapgen.ErrUnknownStrategy},
		{"bad algorithm", func(m *batch.Matrix) { m.Algorithms = []search.Algorithm{-1} }, search.ErrUnknownAlgorithm},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := base()
			tc.mutate(&m)
			assert.ErrorIs(t, m.Validate(), tc.want)
		})
	}
}
