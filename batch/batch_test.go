package batch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/batch"
	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/results"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/trial"
)

// fixedSeed makes instance seeds depend on the trial index only.
func fixedSeed(t int) int64 { return int64(1000 + t) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func smallMatrix() batch.Matrix {
	return batch.Matrix{
		Sizes:      []int{50},
		Densities:  []float64{0.1},
		Types:      []mapgen.Strategy{mapgen.Random},
		Trials:     5,
		Algorithms: batch.DefaultAlgorithms,
	}
}

func TestRun_FifteenRows(t *testing.T) {
	t.Parallel()
	h := batch.New(batch.WithLogger(quietLogger()))
	var table results.Table
	var calls [][2]int

	rep, err := h.Run(context.Background(), smallMatrix(), &table, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	require.NoError(t, err)

	require.Len(t, table.Records, 15)
	assert.Equal(t, 15, rep.Completed)
	assert.Equal(t, 15, rep.Total)
	assert.Zero(t, rep.Skipped)
	assert.False(t, rep.Canceled)
	assert.NotEmpty(t, rep.RunID)

	wantAlgs := []string{"Dijkstra", "A*", "Greedy"}
	for i, r := range table.Records {
		assert.Equal(t, 50, r.MapSize)
		assert.Equal(t, 0.1, r.ObstacleDensity)
		assert.Equal(t, "random", r.MapType)
		assert.Equal(t, i/3, r.Trial)
		assert.Equal(t, wantAlgs[i%3], r.Algorithm)
		assert.Equal(t, table.Records[i-i%3].Seed, r.Seed, "algorithms share the instance seed")
	}

	require.Len(t, calls, 15)
	for i, c := range calls {
		assert.Equal(t, [2]int{i + 1, 15}, c)
	}
}

func TestRun_SharedInstanceGivesConsistentResults(t *testing.T) {
	t.Parallel()
	m := smallMatrix()
	m.Types = []mapgen.Strategy{mapgen.Clustered}
	m.Algorithms = []search.Algorithm{search.Dijkstra, search.AStar, search.Bidirectional}
	h := batch.New(batch.WithLogger(quietLogger()), batch.WithSeedFunc(fixedSeed))

	var table results.Table
	_, err := h.Run(context.Background(), m, &table, nil)
	require.NoError(t, err)

	for i := 0; i < len(table.Records); i += 3 {
		d, a, b := table.Records[i], table.Records[i+1], table.Records[i+2]
		assert.Equal(t, d.FoundPath, a.FoundPath)
		assert.Equal(t, d.PathLength, a.PathLength)
		assert.Equal(t, d.PathLength, b.PathLength)
		assert.LessOrEqual(t, a.NodesExplored, d.NodesExplored)
	}
}

func TestRun_DeterministicWithSeedFunc(t *testing.T) {
	t.Parallel()
	strip := func(rs []trial.Record) []trial.Record {
		out := make([]trial.Record, len(rs))
		for i, r := range rs {
			r.TimeMS = 0
			out[i] = r
		}
		return out
	}
	h := batch.New(batch.WithLogger(quietLogger()), batch.WithSeedFunc(fixedSeed))
	var a, b results.Table
	_, err := h.Run(context.Background(), smallMatrix(), &a, nil)
	require.NoError(t, err)
	_, err = h.Run(context.Background(), smallMatrix(), &b, nil)
	require.NoError(t, err)
	assert.Equal(t, strip(a.Records), strip(b.Records))
	assert.Equal(t, int64(1000), a.Records[0].Seed)
}

func TestRun_SkipsInstancesWithoutEndpoints(t *testing.T) {
	t.Parallel()
	m := batch.Matrix{
		Sizes:      []int{6},
		Densities:  []float64{1},
		Types:      []mapgen.Strategy{mapgen.Random},
		Trials:     4,
		Algorithms: batch.DefaultAlgorithms,
	}
	reg := prometheus.NewRegistry()
	h := batch.New(batch.WithLogger(quietLogger()), batch.WithMetrics(batch.NewMetrics(reg)))

	var table results.Table
	progressCalled := false
	rep, err := h.Run(context.Background(), m, &table, func(int, int) { progressCalled = true })
	require.NoError(t, err)
	assert.Empty(t, table.Records)
	assert.Equal(t, 4, rep.Skipped)
	assert.Equal(t, 12, rep.Total, "total is never adjusted for skips")
	assert.Zero(t, rep.Completed)
	assert.False(t, progressCalled)

	assert.Equal(t, 4.0, gatherValue(t, reg, "pathbench_skipped_configs_total"))
}

func TestRun_CancelBetweenRuns(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := batch.New(batch.WithLogger(quietLogger()))

	var table results.Table
	rep, err := h.Run(ctx, smallMatrix(), &table, func(done, _ int) {
		if done == 4 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, rep.Canceled)
	assert.Equal(t, 4, rep.Completed)
	assert.Len(t, table.Records, 4)
}

// brokenSink fails on the n-th append.
type brokenSink struct {
	n, seen int
}

func (s *brokenSink) Append(trial.Record) error {
	s.seen++
	if s.seen == s.n {
		return errors.New("disk full")
	}
	return nil
}

func (s *brokenSink) Flush() error { return nil }

func TestRun_SinkErrorAborts(t *testing.T) {
	t.Parallel()
	h := batch.New(batch.WithLogger(quietLogger()))
	rep, err := h.Run(context.Background(), smallMatrix(), &brokenSink{n: 3}, nil)
	require.ErrorIs(t, err, batch.ErrSinkWrite)
	assert.Equal(t, 2, rep.Completed)
	assert.False(t, rep.Canceled)
}

func TestRun_InvalidMatrix(t *testing.T) {
	t.Parallel()
	h := batch.New(batch.WithLogger(quietLogger()))
	m := smallMatrix()
	m.Trials = 0
	_, err := h.Run(context.Background(), m, &results.Table{}, nil)
	assert.ErrorIs(t, err, batch.ErrEmptyMatrix)
}

func TestRunToDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clock := func() time.Time { return time.Date(2025, 3, 9, 14, 5, 6, 0, time.UTC) }
	reg := prometheus.NewRegistry()
	h := batch.New(
		batch.WithLogger(quietLogger()),
		batch.WithClock(clock),
		batch.WithMetrics(batch.NewMetrics(reg)),
	)

	rep, err := h.RunToDir(context.Background(), smallMatrix(), dir, nil)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^batch_results_20250309_140506_[0-9a-f]{8}\.csv$`), filepath.Base(rep.Path))
	assert.Equal(t, rep.RunID[:8], filepath.Base(rep.Path)[len("batch_results_20250309_140506_"):][:8])

	// Fixed clock: the default seed is trial + (unix ms mod 100000).
	recs, err := results.Load(rep.Path)
	require.NoError(t, err)
	require.Len(t, recs, 15)
	ms := clock().UnixMilli() % 100000
	for _, r := range recs {
		assert.Equal(t, int64(r.Trial)+ms, r.Seed)
	}

	assert.Equal(t, 15.0, gatherValue(t, reg, "pathbench_runs_total"))
	assert.Equal(t, 1.0, gatherValue(t, reg, "pathbench_progress_ratio"))
}

func TestRunToDir_Unwritable(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	h := batch.New(batch.WithLogger(quietLogger()))
	_, err := h.RunToDir(context.Background(), smallMatrix(), filepath.Join(blocker, "sub"), nil)
	assert.ErrorIs(t, err, batch.ErrSinkWrite)
}

func TestTimeSeed(t *testing.T) {
	t.Parallel()
	now := func() time.Time { return time.UnixMilli(1_234_567) }
	seed := batch.TimeSeed(now)
	assert.Equal(t, int64(34567), seed(0))
	assert.Equal(t, int64(34570), seed(3))
}

// gatherValue sums counter, gauge and histogram-count values of one family.
func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		sum := 0.0
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				sum += float64(m.GetHistogram().GetSampleCount())
			}
		}
		return sum
	}
	t.Fatalf("metric family %q not found", name)
	return 0
}
