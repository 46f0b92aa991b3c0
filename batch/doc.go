// Package batch runs experiment matrices: every combination of map size,
// obstacle density, map type and trial index, with each algorithm solving
// the same generated instance.
//
// Records are streamed to a results.Sink one run at a time, so a canceled
// or crashed batch leaves a valid, reloadable table. Progress is reported
// through a ProgressFunc after every run, logged with log/slog at a
// throttled rate, and optionally exported as Prometheus metrics.
//
// Known limitation: the default seed mixes the trial index with the wall
// clock (see TimeSeed). Each record stores its seed, so any single instance
// can be regenerated, but re-running a matrix does not reproduce it.
package batch
