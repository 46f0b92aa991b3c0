package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Eta-squared interpretation thresholds.
const (
	etaSmall  = 0.01
	etaMedium = 0.06
	etaLarge  = 0.14
)

// ANOVAResult is a one-way ANOVA across algorithm groups.
//
// F and P are NaN when the test is undefined (one group, no within-group
// degrees of freedom, or every value identical). F is +Inf with P = 0 when
// groups differ but have no within-group variance.
type ANOVAResult struct {
	Metric      Metric  `yaml:"metric"`
	Groups      int     `yaml:"groups"`
	F           float64 `yaml:"f_statistic"`
	P           float64 `yaml:"p_value"`
	Significant bool    `yaml:"significant"`
	EtaSquared  float64 `yaml:"eta_squared"`
	Effect      string  `yaml:"effect_size"`
}

// ANOVA tests whether metric means differ across algorithms.
// η² = SS_between / SS_total, 0 when SS_total is 0.
func (a *Analyzer) ANOVA(m Metric) (ANOVAResult, error) {
	if !m.valid() {
		return ANOVAResult{}, fmt.Errorf("ANOVA(%d): %w", int(m), ErrUnknownMetric)
	}
	all := column(a.records, m)
	grand := stat.Mean(all, nil)

	// Sums of squares, each accumulated directly so exact zeros stay exact.
	var ssTotal, ssBetween, ssWithin float64
	for _, v := range all {
		ssTotal += (v - grand) * (v - grand)
	}
	for _, alg := range a.algorithms {
		g := a.values(alg, m)
		gm := stat.Mean(g, nil)
		ssBetween += float64(len(g)) * (gm - grand) * (gm - grand)
		for _, v := range g {
			ssWithin += (v - gm) * (v - gm)
		}
	}

	k := len(a.algorithms)
	n := len(all)
	res := ANOVAResult{Metric: m, Groups: k, F: math.NaN(), P: math.NaN()}

	if ssTotal > 0 {
		res.EtaSquared = ssBetween / ssTotal
	}
	res.Effect = interpretEta(res.EtaSquared)

	dfBetween, dfWithin := float64(k-1), float64(n-k)
	if dfBetween <= 0 || dfWithin <= 0 {
		return res, nil
	}
	switch {
	case ssWithin == 0 && ssBetween == 0:
		// all values identical: undefined
	case ssWithin == 0:
		res.F, res.P = math.Inf(1), 0
	default:
		res.F = (ssBetween / dfBetween) / (ssWithin / dfWithin)
		res.P = 1 - distuv.F{D1: dfBetween, D2: dfWithin}.CDF(res.F)
	}
	res.Significant = res.P < significanceLevel
	return res, nil
}

func interpretEta(eta float64) string {
	switch {
	case eta < etaSmall:
		return "negligible"
	case eta < etaMedium:
		return "small"
	case eta < etaLarge:
		return "medium"
	default:
		return "large"
	}
}
