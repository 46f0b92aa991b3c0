// SPDX-License-Identifier: MIT
// Package: pathbench/stats
//
// errors.go - sentinel errors for the stats package.
//
// Error policy:
//   • Degenerate data (single-sample groups, zero variance, one algorithm)
//     never produces an error; results carry NaN or zero sentinels instead.
//   • Errors are reserved for unusable input: no records, unknown metric,
//     unknown baseline, confidence outside (0,1).

package stats

import "errors"

// ErrNoRecords indicates an empty table, or one emptied by the no-path policy.
var ErrNoRecords = errors.New("stats: no records")

// ErrUnknownMetric indicates a metric name outside the result columns.
var ErrUnknownMetric = errors.New("stats: unknown metric")

// ErrUnknownBaseline indicates a baseline algorithm absent from the table.
var ErrUnknownBaseline = errors.New("stats: baseline algorithm not present")

// ErrBadConfidence indicates a confidence level outside (0,1).
var ErrBadConfidence = errors.New("stats: confidence must be in (0,1)")

// ErrUnknownPolicy indicates an unrecognized no-path policy name.
var ErrUnknownPolicy = errors.New("stats: unknown no-path policy")
