package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Interval is a two-sided t confidence interval for one algorithm's mean.
// Defined is false when N < 2; the bounds are then NaN.
type Interval struct {
	Algorithm string  `yaml:"algorithm"`
	N         int     `yaml:"n"`
	Mean      float64 `yaml:"mean"`
	StdErr    float64 `yaml:"std_error"`
	Lower     float64 `yaml:"ci_lower"`
	Upper     float64 `yaml:"ci_upper"`
	Width     float64 `yaml:"ci_width"`
	Defined   bool    `yaml:"defined"`
}

// ConfidenceIntervals returns mean ± t·s/√n per algorithm.
// A zero-variance group gets a zero-width interval at its mean.
func (a *Analyzer) ConfidenceIntervals(confidence float64, m Metric) ([]Interval, error) {
	if !(confidence > 0 && confidence < 1) {
		return nil, fmt.Errorf("ConfidenceIntervals(%g): %w", confidence, ErrBadConfidence)
	}
	if !m.valid() {
		return nil, fmt.Errorf("ConfidenceIntervals(%d): %w", int(m), ErrUnknownMetric)
	}

	out := make([]Interval, 0, len(a.algorithms))
	for _, alg := range a.algorithms {
		out = append(out, interval(alg, a.values(alg, m), confidence))
	}
	return out, nil
}

func interval(alg string, x []float64, confidence float64) Interval {
	iv := Interval{Algorithm: alg, N: len(x), Mean: stat.Mean(x, nil)}
	if iv.N < 2 {
		nan := math.NaN()
		iv.StdErr, iv.Lower, iv.Upper, iv.Width = nan, nan, nan, nan
		return iv
	}
	iv.Defined = true
	iv.StdErr = stat.StdDev(x, nil) / math.Sqrt(float64(iv.N))
	if iv.StdErr == 0 {
		iv.Lower, iv.Upper = iv.Mean, iv.Mean
		return iv
	}
	tcrit := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(iv.N - 1)}.Quantile(1 - (1-confidence)/2)
	margin := tcrit * iv.StdErr
	iv.Lower, iv.Upper = iv.Mean-margin, iv.Mean+margin
	iv.Width = iv.Upper - iv.Lower
	return iv
}
