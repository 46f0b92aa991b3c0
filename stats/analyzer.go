package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pathbench/results"
	"github.com/katalvlaran/pathbench/trial"
)

// Analyzer groups a results table by algorithm and computes comparisons.
// It is immutable after New and safe for concurrent reads.
type Analyzer struct {
	policy     NoPathPolicy
	records    []trial.Record
	algorithms []string                  // order of first appearance
	groups     map[string][]trial.Record // algorithm → rows
}

// New builds an Analyzer over records after applying the no-path policy.
// Returns ErrNoRecords when nothing remains.
func New(records []trial.Record, opts ...Option) (*Analyzer, error) {
	cfg := config{policy: Keep}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := cfg.policy.apply(records)
	if len(rows) == 0 {
		return nil, fmt.Errorf("New: policy %s: %w", cfg.policy, ErrNoRecords)
	}

	a := &Analyzer{
		policy:  cfg.policy,
		records: rows,
		groups:  make(map[string][]trial.Record),
	}
	for _, r := range rows {
		if _, seen := a.groups[r.Algorithm]; !seen {
			a.algorithms = append(a.algorithms, r.Algorithm)
		}
		a.groups[r.Algorithm] = append(a.groups[r.Algorithm], r)
	}
	return a, nil
}

// Load reads a results table from path and builds an Analyzer.
func Load(path string, opts ...Option) (*Analyzer, error) {
	recs, err := results.Load(path)
	if err != nil {
		return nil, err
	}
	return New(recs, opts...)
}

// Algorithms returns algorithm names in order of first appearance.
func (a *Analyzer) Algorithms() []string {
	return append([]string(nil), a.algorithms...)
}

// Len returns the number of rows analyzed.
func (a *Analyzer) Len() int { return len(a.records) }

// Policy returns the no-path policy in effect.
func (a *Analyzer) Policy() NoPathPolicy { return a.policy }

// values returns metric values of one algorithm group.
func (a *Analyzer) values(alg string, m Metric) []float64 {
	return column(a.groups[alg], m)
}

func column(rows []trial.Record, m Metric) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = m.value(r)
	}
	return out
}

// Describe is a five-number summary of one sample.
// Std uses the n-1 denominator and is NaN when N < 2.
type Describe struct {
	N    int     `yaml:"n"`
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

func describe(x []float64) Describe {
	if len(x) == 0 {
		nan := math.NaN()
		return Describe{Mean: nan, Std: nan, Min: nan, Max: nan}
	}
	d := Describe{
		N:    len(x),
		Mean: stat.Mean(x, nil),
		Std:  sampleStd(x),
		Min:  floats.Min(x),
		Max:  floats.Max(x),
	}
	return d
}

// sampleStd is the n-1 standard deviation, NaN for fewer than two values.
func sampleStd(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}

// popVariance is the n-denominator variance.
func popVariance(x []float64) float64 {
	_, v := stat.PopMeanVariance(x, nil)
	return v
}
