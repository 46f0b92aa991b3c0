// SPDX-License-Identifier: MIT
// Package: pathbench/mapgen
//
// options.go - functional options and internal configuration.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Defaults reproduce the canonical experiment maps; override only for
//     exploratory runs, since changed knobs make result tables incomparable.

package mapgen

import "fmt"

// Deterministic defaults (named, no magic numbers).
const (
	defaultClusterRadiusMin = 3   // smallest cluster half-width
	defaultClusterRadiusMax = 8   // largest cluster half-width
	defaultClusterFill      = 0.7 // per-cell obstacle probability inside a cluster
	clusterAreaDivisor      = 10  // clusters = ⌊size²·density / divisor⌋
	mazeMinSpan             = 3   // recursion stops when hi-lo < mazeMinSpan
)

// genConfig aggregates all knobs used by the generators.
// It is passed by VALUE to generators.
type genConfig struct {
	clusterRadiusMin int
	clusterRadiusMax int
	clusterFill      float64
}

// Option customizes a generator by mutating genConfig before generation.
type Option func(*genConfig)

// WithClusterRadius sets the inclusive range of cluster half-widths.
// Panics unless 1 ≤ min ≤ max.
func WithClusterRadius(min, max int) Option {
	if min < 1 || max < min {
		panic(fmt.Sprintf("mapgen: WithClusterRadius(%d,%d): need 1 ≤ min ≤ max", min, max))
	}
	return func(c *genConfig) {
		c.clusterRadiusMin = min
		c.clusterRadiusMax = max
	}
}

// WithClusterFill sets the per-cell obstacle probability inside a cluster.
// Panics unless 0 ≤ p ≤ 1.
func WithClusterFill(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("mapgen: WithClusterFill(%g): need 0 ≤ p ≤ 1", p))
	}
	return func(c *genConfig) {
		c.clusterFill = p
	}
}

// newGenConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		clusterRadiusMin: defaultClusterRadiusMin,
		clusterRadiusMax: defaultClusterRadiusMax,
		clusterFill:      defaultClusterFill,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
