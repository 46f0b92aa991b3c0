// Package stats compares algorithms over a results table.
//
// An Analyzer groups rows by algorithm (order of first appearance) and offers:
//
//   - Summary: mean, sample std, min, max of every metric
//   - ANOVA: one-way F test with η² effect size
//   - PostHoc: pairwise Student t-tests, Cohen's d, Bonferroni α
//   - ConfidenceIntervals: t intervals for each mean
//   - ByCondition: metric per density, map size and map type
//   - BaselineComparison: relative improvement over one algorithm
//
// Degenerate inputs (one algorithm, single-row groups, zero variance) never
// fail; the affected fields are NaN or zero as documented per method.
//
// Rows that found no path keep path_length 0 by default. WithNoPathPolicy
// excludes them or penalizes them with map_size² instead.
//
// Distributions come from gonum.org/v1/gonum/stat/distuv.
package stats
