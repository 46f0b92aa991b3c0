package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Cohen's d interpretation thresholds.
const (
	cohenSmall  = 0.2
	cohenMedium = 0.5
	cohenLarge  = 0.8
)

// Comparison is one pairwise Student t-test between two algorithms.
type Comparison struct {
	Algorithm1  string  `yaml:"algorithm1"`
	Algorithm2  string  `yaml:"algorithm2"`
	Mean1       float64 `yaml:"mean1"`
	Mean2       float64 `yaml:"mean2"`
	MeanDiff    float64 `yaml:"mean_diff"`
	PercentDiff float64 `yaml:"percent_diff"`
	T           float64 `yaml:"t_statistic"`
	P           float64 `yaml:"p_value"`
	Significant bool    `yaml:"significant"`
	CohensD     float64 `yaml:"cohens_d"`
	Effect      string  `yaml:"effect_size"`
}

// PostHocResult holds every unordered pair with a Bonferroni-corrected α.
type PostHocResult struct {
	Metric      Metric       `yaml:"metric"`
	Alpha       float64      `yaml:"bonferroni_alpha"`
	Comparisons []Comparison `yaml:"comparisons"`
}

// PostHoc compares every pair (i<j) of algorithms in first-appearance order.
//
// The t statistic uses pooled variance with n1+n2-2 degrees of freedom and a
// two-sided p-value. A pair is significant when p < 0.05/pairs. Cohen's d
// uses population standard deviations. With one algorithm the result has
// no comparisons and Alpha is the uncorrected level.
func (a *Analyzer) PostHoc(m Metric) (PostHocResult, error) {
	if !m.valid() {
		return PostHocResult{}, fmt.Errorf("PostHoc(%d): %w", int(m), ErrUnknownMetric)
	}
	k := len(a.algorithms)
	pairs := k * (k - 1) / 2
	res := PostHocResult{Metric: m, Alpha: significanceLevel}
	if pairs > 0 {
		res.Alpha = significanceLevel / float64(pairs)
	}
	res.Comparisons = make([]Comparison, 0, pairs)

	for i := 0; i < k; i++ {
		x := a.values(a.algorithms[i], m)
		for j := i + 1; j < k; j++ {
			y := a.values(a.algorithms[j], m)
			c := compare(x, y)
			c.Algorithm1, c.Algorithm2 = a.algorithms[i], a.algorithms[j]
			c.Significant = c.P < res.Alpha
			res.Comparisons = append(res.Comparisons, c)
		}
	}
	return res, nil
}

// compare fills the numeric fields of a Comparison.
func compare(x, y []float64) Comparison {
	c := Comparison{
		Mean1: stat.Mean(x, nil),
		Mean2: stat.Mean(y, nil),
	}
	c.MeanDiff = c.Mean1 - c.Mean2
	if c.Mean2 != 0 {
		c.PercentDiff = c.MeanDiff / c.Mean2 * 100
	}
	c.T, c.P = studentT(x, y)
	c.CohensD = cohensD(x, y)
	c.Effect = interpretCohen(c.CohensD)
	return c
}

// studentT is the equal-variance two-sample t-test.
// Zero pooled variance yields ±Inf (p=0) for distinct means, NaN otherwise.
func studentT(x, y []float64) (t, p float64) {
	n1, n2 := float64(len(x)), float64(len(y))
	df := n1 + n2 - 2
	if df <= 0 {
		return math.NaN(), math.NaN()
	}
	m1, v1 := stat.MeanVariance(x, nil)
	m2, v2 := stat.MeanVariance(y, nil)
	// MeanVariance of one value is NaN; its contribution to the pool is 0.
	ss := 0.0
	if n1 > 1 {
		ss += (n1 - 1) * v1
	}
	if n2 > 1 {
		ss += (n2 - 1) * v2
	}
	pooled := ss / df
	se := math.Sqrt(pooled * (1/n1 + 1/n2))
	diff := m1 - m2

	if se == 0 {
		if diff == 0 {
			return math.NaN(), math.NaN()
		}
		return math.Copysign(math.Inf(1), diff), 0
	}
	t = diff / se
	p = 2 * (1 - distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(math.Abs(t)))
	return t, p
}

// cohensD = (mean1-mean2) / sqrt((σ1²+σ2²)/2) with population variances.
func cohensD(x, y []float64) float64 {
	pooled := math.Sqrt((popVariance(x) + popVariance(y)) / 2)
	if pooled == 0 {
		return 0
	}
	return (stat.Mean(x, nil) - stat.Mean(y, nil)) / pooled
}

func interpretCohen(d float64) string {
	d = math.Abs(d)
	switch {
	case d < cohenSmall:
		return "negligible"
	case d < cohenMedium:
		return "small"
	case d < cohenLarge:
		return "medium"
	default:
		return "large"
	}
}
