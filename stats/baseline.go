package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Improvement is one algorithm's relative gain over the baseline.
// Positive percentages mean the algorithm is faster or explores less.
type Improvement struct {
	Algorithm         string  `yaml:"algorithm"`
	TimeImprovement   float64 `yaml:"time_improvement_pct"`
	NodesImprovement  float64 `yaml:"nodes_improvement_pct"`
	MeanTimeMS        float64 `yaml:"mean_time_ms"`
	MeanNodesExplored float64 `yaml:"mean_nodes_explored"`
}

// BaselineComparison reports (baseline-alg)/baseline·100 for time_ms and
// nodes_explored, for every algorithm other than baseline. A zero baseline
// mean yields 0.
func (a *Analyzer) BaselineComparison(baseline string) ([]Improvement, error) {
	base, ok := a.groups[baseline]
	if !ok {
		return nil, fmt.Errorf("BaselineComparison(%q): %w", baseline, ErrUnknownBaseline)
	}
	baseTime := stat.Mean(column(base, TimeMS), nil)
	baseNodes := stat.Mean(column(base, NodesExplored), nil)

	out := make([]Improvement, 0, len(a.algorithms)-1)
	for _, alg := range a.algorithms {
		if alg == baseline {
			continue
		}
		t := stat.Mean(a.values(alg, TimeMS), nil)
		n := stat.Mean(a.values(alg, NodesExplored), nil)
		out = append(out, Improvement{
			Algorithm:         alg,
			TimeImprovement:   improvement(baseTime, t),
			NodesImprovement:  improvement(baseNodes, n),
			MeanTimeMS:        t,
			MeanNodesExplored: n,
		})
	}
	return out, nil
}

func improvement(base, v float64) float64 {
	if base == 0 {
		return 0
	}
	return (base - v) / base * 100
}
