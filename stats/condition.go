package stats

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pathbench/trial"
)

// Condition factors reported by ByCondition.
const (
	FactorDensity = "obstacle_density"
	FactorMapSize = "map_size"
	FactorMapType = "map_type"
)

// Factors lists the condition factors in report order.
var Factors = []string{FactorDensity, FactorMapSize, FactorMapType}

// Cell is the aggregate of one (algorithm, level) group.
type Cell struct {
	Algorithm string  `yaml:"algorithm"`
	Level     string  `yaml:"level"`
	Mean      float64 `yaml:"mean"`
	Std       float64 `yaml:"std"`
	N         int     `yaml:"count"`
}

// ConditionBreakdown maps each factor to its cells, sorted by algorithm
// then level (numerically when the level parses as a number).
type ConditionBreakdown map[string][]Cell

// ByCondition aggregates the metric per algorithm and per level of each
// factor. Std is NaN for single-row cells.
func (a *Analyzer) ByCondition(m Metric) (ConditionBreakdown, error) {
	if !m.valid() {
		return nil, fmt.Errorf("ByCondition(%d): %w", int(m), ErrUnknownMetric)
	}
	out := make(ConditionBreakdown, len(Factors))
	for _, f := range Factors {
		out[f] = a.breakdown(m, levelOf(f))
	}
	return out, nil
}

func levelOf(factor string) func(trial.Record) string {
	switch factor {
	case FactorDensity:
		return func(r trial.Record) string { return strconv.FormatFloat(r.ObstacleDensity, 'f', -1, 64) }
	case FactorMapSize:
		return func(r trial.Record) string { return strconv.Itoa(r.MapSize) }
	default:
		return func(r trial.Record) string { return r.MapType }
	}
}

func (a *Analyzer) breakdown(m Metric, level func(trial.Record) string) []Cell {
	type key struct{ alg, lvl string }
	groups := make(map[key][]float64)
	for _, r := range a.records {
		k := key{r.Algorithm, level(r)}
		groups[k] = append(groups[k], m.value(r))
	}

	cells := make([]Cell, 0, len(groups))
	for k, x := range groups {
		cells = append(cells, Cell{
			Algorithm: k.alg,
			Level:     k.lvl,
			Mean:      stat.Mean(x, nil),
			Std:       sampleStd(x),
			N:         len(x),
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Algorithm != cells[j].Algorithm {
			return cells[i].Algorithm < cells[j].Algorithm
		}
		return levelLess(cells[i].Level, cells[j].Level)
	})
	return cells
}

// levelLess orders numerically when both levels are numbers.
func levelLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}
