// Package pathbench is a benchmark for grid path-finding.
//
// It generates square obstacle maps, runs several search variants over the
// same problem instances and compares them statistically:
//
//	grid/      square obstacle maps, positions, 4-connectivity, BFS distances
//	mapgen/    deterministic map generators (random, clustered, maze, mixed)
//	           and endpoint selection
//	search/    step-driven Dijkstra, A*, greedy best-first and bidirectional
//	           engines, plus step recording for replays
//	trial/     one timed run and its result record
//	results/   the CSV results table (streaming writer, reader)
//	batch/     the experiment matrix harness with Prometheus metrics
//	stats/     summaries, ANOVA, post-hoc t-tests, confidence intervals
//	config/    YAML experiment files
//	logging/   slog construction
//
// The pathbench command (cmd/pathbench) wires these together:
//
//	pathbench run --quick
//	pathbench analyze results/batch_results_*.csv
//
// Quick ASCII example of a replay (o finalized, * path):
//
//	S***#
//	oo#*#
//	o..*.
//	##.**
//	....E
//
//	go install github.com/katalvlaran/pathbench/cmd/pathbench@latest
package pathbench
