package stats_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/results"
	"github.com/katalvlaran/pathbench/stats"
	"github.com/katalvlaran/pathbench/trial"
)

const tol = 1e-4

// rec builds a row with the fields the analyses read.
func rec(alg string, tr, size int, density float64, typ string, nodes, path int, ms float64, found bool) trial.Record {
	return trial.Record{
		Trial: tr, MapSize: size, ObstacleDensity: density, MapType: typ, Algorithm: alg,
		NodesExplored: nodes, PathLength: path, TimeMS: ms, FoundPath: found, Seed: int64(tr),
	}
}

// twoGroups: A times 1,2,3 and B times 4,5,6; nodes constant per group;
// path length constant overall.
func twoGroups() []trial.Record {
	return []trial.Record{
		rec("A", 0, 9, 0.1, "random", 10, 5, 1, true),
		rec("B", 0, 9, 0.1, "random", 20, 5, 4, true),
		rec("A", 1, 10, 0.1, "clustered", 10, 5, 2, true),
		rec("B", 1, 10, 0.1, "clustered", 20, 5, 5, true),
		rec("A", 2, 10, 0.25, "random", 10, 5, 3, true),
		rec("B", 2, 10, 0.25, "random", 20, 5, 6, true),
	}
}

func newAnalyzer(t *testing.T, rows []trial.Record, opts ...stats.Option) *stats.Analyzer {
	t.Helper()
	a, err := stats.New(rows, opts...)
	require.NoError(t, err)
	return a
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()
	_, err := stats.New(nil)
	assert.ErrorIs(t, err, stats.ErrNoRecords)
}

func TestNew_AlgorithmOrder(t *testing.T) {
	t.Parallel()
	rows := []trial.Record{
		rec("Greedy", 0, 5, 0, "random", 1, 1, 1, true),
		rec("A*", 0, 5, 0, "random", 1, 1, 1, true),
		rec("Greedy", 1, 5, 0, "random", 1, 1, 1, true),
		rec("Dijkstra", 1, 5, 0, "random", 1, 1, 1, true),
	}
	a := newAnalyzer(t, rows)
	assert.Equal(t, []string{"Greedy", "A*", "Dijkstra"}, a.Algorithms())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, stats.Keep, a.Policy())
}

func TestSummary(t *testing.T) {
	t.Parallel()
	s := newAnalyzer(t, twoGroups()).Summary()
	require.Len(t, s, 2)

	a := s[0]
	assert.Equal(t, "A", a.Algorithm)
	assert.Equal(t, 3, a.TimeMS.N)
	assert.InDelta(t, 2, a.TimeMS.Mean, tol)
	assert.InDelta(t, 1, a.TimeMS.Std, tol)
	assert.Equal(t, 1.0, a.TimeMS.Min)
	assert.Equal(t, 3.0, a.TimeMS.Max)
	assert.Equal(t, 0.0, a.NodesExplored.Std)
	assert.InDelta(t, 20, s[1].NodesExplored.Mean, tol)
}

func TestSummary_SingleRowStdIsNaN(t *testing.T) {
	t.Parallel()
	s := newAnalyzer(t, twoGroups()[:1]).Summary()
	require.Len(t, s, 1)
	assert.True(t, math.IsNaN(s[0].TimeMS.Std))
	assert.Equal(t, 1.0, s[0].TimeMS.Mean)
}

func TestANOVA_HandComputed(t *testing.T) {
	t.Parallel()
	// SST=17.5, SSB=13.5, SSW=4, df=(1,4).
	r, err := newAnalyzer(t, twoGroups()).ANOVA(stats.TimeMS)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Groups)
	assert.InDelta(t, 13.5, r.F, tol)
	assert.InDelta(t, 0.0213116, r.P, tol)
	assert.True(t, r.Significant)
	assert.InDelta(t, 13.5/17.5, r.EtaSquared, tol)
	assert.Equal(t, "large", r.Effect)
}

func TestANOVA_Degenerate(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, twoGroups())

	// Groups differ with no spread inside them.
	r, err := a.ANOVA(stats.NodesExplored)
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.F, 1))
	assert.Equal(t, 0.0, r.P)
	assert.True(t, r.Significant)
	assert.InDelta(t, 1, r.EtaSquared, tol)

	// Every value identical.
	r, err = a.ANOVA(stats.PathLength)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.F))
	assert.True(t, math.IsNaN(r.P))
	assert.False(t, r.Significant)
	assert.Equal(t, 0.0, r.EtaSquared)
	assert.Equal(t, "negligible", r.Effect)

	// One algorithm.
	single := newAnalyzer(t, []trial.Record{
		rec("A", 0, 5, 0, "random", 1, 1, 1, true),
		rec("A", 1, 5, 0, "random", 1, 1, 2, true),
	})
	r, err = single.ANOVA(stats.TimeMS)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r.F))
	assert.False(t, r.Significant)

	_, err = a.ANOVA(stats.Metric(42))
	assert.ErrorIs(t, err, stats.ErrUnknownMetric)
}

func TestPostHoc_HandComputed(t *testing.T) {
	t.Parallel()
	r, err := newAnalyzer(t, twoGroups()).PostHoc(stats.TimeMS)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, r.Alpha, 1e-12)
	require.Len(t, r.Comparisons, 1)

	c := r.Comparisons[0]
	assert.Equal(t, "A", c.Algorithm1)
	assert.Equal(t, "B", c.Algorithm2)
	assert.InDelta(t, -3, c.MeanDiff, tol)
	assert.InDelta(t, -60, c.PercentDiff, tol)
	assert.InDelta(t, -3.6742346, c.T, tol)
	assert.InDelta(t, 0.0213116, c.P, tol)
	assert.True(t, c.Significant)
	assert.InDelta(t, -3.6742346, c.CohensD, tol)
	assert.Equal(t, "large", c.Effect)
}

func TestPostHoc_ZeroVariance(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, twoGroups())

	r, err := a.PostHoc(stats.NodesExplored)
	require.NoError(t, err)
	c := r.Comparisons[0]
	assert.True(t, math.IsInf(c.T, -1))
	assert.Equal(t, 0.0, c.P)
	assert.Equal(t, 0.0, c.CohensD)
	assert.Equal(t, "negligible", c.Effect)

	r, err = a.PostHoc(stats.PathLength)
	require.NoError(t, err)
	c = r.Comparisons[0]
	assert.True(t, math.IsNaN(c.T))
	assert.False(t, c.Significant)
	assert.Equal(t, 0.0, c.PercentDiff)
}

func TestPostHoc_BonferroniPairs(t *testing.T) {
	t.Parallel()
	rows := append(twoGroups(),
		rec("C", 0, 9, 0.1, "random", 30, 5, 7, true),
		rec("C", 1, 10, 0.1, "clustered", 30, 5, 8, true),
	)
	r, err := newAnalyzer(t, rows).PostHoc(stats.TimeMS)
	require.NoError(t, err)
	assert.InDelta(t, 0.05/3, r.Alpha, 1e-12)

	pairs := make([][2]string, 0, len(r.Comparisons))
	for _, c := range r.Comparisons {
		pairs = append(pairs, [2]string{c.Algorithm1, c.Algorithm2})
	}
	assert.Equal(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}}, pairs)
}

func TestPostHoc_SingleAlgorithm(t *testing.T) {
	t.Parallel()
	r, err := newAnalyzer(t, twoGroups()[:1]).PostHoc(stats.TimeMS)
	require.NoError(t, err)
	assert.Empty(t, r.Comparisons)
	assert.Equal(t, 0.05, r.Alpha)
}

func TestConfidenceIntervals(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, twoGroups())

	ivs, err := a.ConfidenceIntervals(0.95, stats.TimeMS)
	require.NoError(t, err)
	require.Len(t, ivs, 2)
	iv := ivs[0]
	// t(0.975, 2) = 4.302653; s/√n = 1/√3.
	assert.True(t, iv.Defined)
	assert.InDelta(t, 1/math.Sqrt(3), iv.StdErr, tol)
	assert.InDelta(t, 2-2.4841377, iv.Lower, tol)
	assert.InDelta(t, 2+2.4841377, iv.Upper, tol)
	assert.InDelta(t, 2*2.4841377, iv.Width, tol)

	// Zero variance collapses to the mean.
	ivs, err = a.ConfidenceIntervals(0.99, stats.NodesExplored)
	require.NoError(t, err)
	assert.True(t, ivs[1].Defined)
	assert.Equal(t, 20.0, ivs[1].Lower)
	assert.Equal(t, 20.0, ivs[1].Upper)
	assert.Equal(t, 0.0, ivs[1].Width)
}

func TestConfidenceIntervals_Undefined(t *testing.T) {
	t.Parallel()
	ivs, err := newAnalyzer(t, twoGroups()[:1]).ConfidenceIntervals(0.95, stats.TimeMS)
	require.NoError(t, err)
	require.Len(t, ivs, 1)
	assert.False(t, ivs[0].Defined)
	assert.Equal(t, 1, ivs[0].N)
	assert.Equal(t, 1.0, ivs[0].Mean)
	assert.True(t, math.IsNaN(ivs[0].Lower))
	assert.True(t, math.IsNaN(ivs[0].Upper))
}

func TestConfidenceIntervals_BadInput(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, twoGroups())
	for _, c := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		_, err := a.ConfidenceIntervals(c, stats.TimeMS)
		assert.ErrorIs(t, err, stats.ErrBadConfidence, "confidence %v", c)
	}
	_, err := a.ConfidenceIntervals(0.95, stats.Metric(-1))
	assert.ErrorIs(t, err, stats.ErrUnknownMetric)
}

func TestByCondition(t *testing.T) {
	t.Parallel()
	bd, err := newAnalyzer(t, twoGroups()).ByCondition(stats.TimeMS)
	require.NoError(t, err)
	require.Len(t, bd, 3)

	sizes := bd[stats.FactorMapSize]
	require.Len(t, sizes, 4)
	// Numeric level order: 9 before 10.
	assert.Equal(t, "A", sizes[0].Algorithm)
	assert.Equal(t, "9", sizes[0].Level)
	assert.Equal(t, 1.0, sizes[0].Mean)
	assert.Equal(t, 1, sizes[0].N)
	assert.True(t, math.IsNaN(sizes[0].Std))
	assert.Equal(t, "10", sizes[1].Level)
	assert.InDelta(t, 2.5, sizes[1].Mean, tol)
	assert.InDelta(t, math.Sqrt(0.5), sizes[1].Std, tol)
	assert.Equal(t, "B", sizes[2].Algorithm)

	dens := bd[stats.FactorDensity]
	require.Len(t, dens, 4)
	assert.Equal(t, "0.1", dens[0].Level)
	assert.Equal(t, "0.25", dens[1].Level)

	types := bd[stats.FactorMapType]
	require.Len(t, types, 4)
	assert.Equal(t, "clustered", types[0].Level)
	assert.Equal(t, 1, types[0].N)
	assert.Equal(t, "random", types[1].Level)
	assert.InDelta(t, 2, types[1].Mean, tol)
}

func TestBaselineComparison(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, twoGroups())

	imp, err := a.BaselineComparison("A")
	require.NoError(t, err)
	require.Len(t, imp, 1)
	assert.Equal(t, "B", imp[0].Algorithm)
	assert.InDelta(t, -150, imp[0].TimeImprovement, tol)
	assert.InDelta(t, -100, imp[0].NodesImprovement, tol)

	imp, err = a.BaselineComparison("B")
	require.NoError(t, err)
	assert.InDelta(t, 60, imp[0].TimeImprovement, tol)
	assert.InDelta(t, 50, imp[0].NodesImprovement, tol)

	_, err = a.BaselineComparison("Dijkstra")
	assert.ErrorIs(t, err, stats.ErrUnknownBaseline)
}

func TestBaselineComparison_ZeroBaseline(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, []trial.Record{
		rec("Z", 0, 5, 0, "random", 0, 0, 0, false),
		rec("B", 0, 5, 0, "random", 7, 3, 1, true),
	})
	imp, err := a.BaselineComparison("Z")
	require.NoError(t, err)
	assert.Equal(t, 0.0, imp[0].TimeImprovement)
	assert.Equal(t, 0.0, imp[0].NodesImprovement)
}

func TestNoPathPolicy(t *testing.T) {
	t.Parallel()
	rows := []trial.Record{
		rec("A", 0, 10, 0.4, "random", 30, 0, 1, false),
		rec("A", 1, 10, 0.4, "random", 40, 19, 2, true),
	}

	keep := newAnalyzer(t, rows).Summary()[0]
	assert.InDelta(t, 9.5, keep.PathLength.Mean, tol)

	excl := newAnalyzer(t, rows, stats.WithNoPathPolicy(stats.Exclude))
	assert.Equal(t, 1, excl.Len())
	assert.InDelta(t, 19, excl.Summary()[0].PathLength.Mean, tol)

	pen := newAnalyzer(t, rows, stats.WithNoPathPolicy(stats.Penalize)).Summary()[0]
	assert.InDelta(t, (100+19)/2.0, pen.PathLength.Mean, tol)

	// Input rows are not rewritten.
	assert.Equal(t, 0, rows[0].PathLength)

	_, err := stats.New(rows[:1], stats.WithNoPathPolicy(stats.Exclude))
	assert.ErrorIs(t, err, stats.ErrNoRecords)

	assert.Panics(t, func() { stats.WithNoPathPolicy(stats.NoPathPolicy(7)) })
}

func TestParse(t *testing.T) {
	t.Parallel()
	m, err := stats.ParseMetric(" Nodes_Explored ")
	require.NoError(t, err)
	assert.Equal(t, stats.NodesExplored, m)
	_, err = stats.ParseMetric("speed")
	assert.ErrorIs(t, err, stats.ErrUnknownMetric)

	var mm stats.Metric
	require.NoError(t, mm.UnmarshalText([]byte("path_length")))
	assert.Equal(t, stats.PathLength, mm)

	p, err := stats.ParseNoPathPolicy("PENALIZE")
	require.NoError(t, err)
	assert.Equal(t, stats.Penalize, p)
	_, err = stats.ParseNoPathPolicy("drop")
	assert.ErrorIs(t, err, stats.ErrUnknownPolicy)

	assert.Equal(t, "exclude", stats.Exclude.String())
	assert.Equal(t, "Metric(9)", stats.Metric(9).String())
}

func TestFullReport(t *testing.T) {
	t.Parallel()
	a := newAnalyzer(t, twoGroups())

	rep, err := a.FullReport(stats.ReportConfig{})
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Records)
	assert.Equal(t, stats.DefaultConfidence, rep.Config.Confidence)
	assert.Equal(t, stats.DefaultBaseline, rep.Config.Baseline)
	assert.Equal(t, stats.TimeMS, rep.ANOVA.Metric)
	assert.Len(t, rep.Summary, 2)
	assert.Len(t, rep.Intervals, 2)
	assert.Len(t, rep.PostHoc.Comparisons, 1)
	assert.Nil(t, rep.Baseline, "Dijkstra is not in the table")

	rep, err = a.FullReport(stats.ReportConfig{Metric: stats.NodesExplored, Confidence: 0.9, Baseline: "A"})
	require.NoError(t, err)
	assert.Equal(t, stats.NodesExplored, rep.PostHoc.Metric)
	require.Len(t, rep.Baseline, 1)

	_, err = a.FullReport(stats.ReportConfig{Confidence: 2})
	assert.ErrorIs(t, err, stats.ErrBadConfidence)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	w, err := results.Create(path)
	require.NoError(t, err)
	for _, r := range twoGroups() {
		require.NoError(t, w.Append(r))
	}
	require.NoError(t, w.Close())

	a, err := stats.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, a.Algorithms())

	_, err = stats.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
