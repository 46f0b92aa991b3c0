package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/results"
	"github.com/katalvlaran/pathbench/trial"
)

// ErrSinkWrite wraps any failure to persist a record. It aborts the batch.
var ErrSinkWrite = errors.New("batch: cannot write record")

// seedModulus bounds the time component of the default seed.
const seedModulus = 100000

// defaultProgressLogEvery is the minimum spacing of progress log lines.
const defaultProgressLogEvery = 5 * time.Second

// ProgressFunc is called after every run with done ≤ total.
type ProgressFunc func(done, total int)

// SeedFunc derives the generation seed for one problem instance.
type SeedFunc func(trial int) int64

// TimeSeed returns the default seed: trial + (unix milliseconds mod 100000),
// read at the moment each instance is generated. Two batches started at
// different times do not share seeds, so runs are not reproducible from
// the matrix alone; the seed is stored in every record instead.
func TimeSeed(now func() time.Time) SeedFunc {
	return func(trial int) int64 {
		return int64(trial) + now().UnixMilli()%seedModulus
	}
}

// Report summarizes a finished or interrupted batch.
type Report struct {
	RunID     string
	Path      string // set by RunToDir
	Completed int    // runs written
	Total     int    // Matrix.Total, never adjusted for skips
	Skipped   int    // instances without valid endpoints
	Canceled  bool
	Elapsed   time.Duration
}

// Harness runs experiment matrices.
type Harness struct {
	seed     SeedFunc
	logger   *slog.Logger
	metrics  *Metrics
	runner   *trial.Runner
	now      func() time.Time
	logEvery time.Duration
}

// Option configures a Harness.
type Option func(*Harness)

// WithSeedFunc replaces the time-based default seed.
func WithSeedFunc(fn SeedFunc) Option {
	if fn == nil {
		panic("batch: WithSeedFunc(nil)")
	}
	return func(h *Harness) { h.seed = fn }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(h *Harness) { h.logger = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(h *Harness) { h.metrics = m }
}

// WithRunner sets the trial runner, e.g. to pass engine options.
func WithRunner(r *trial.Runner) Option {
	if r == nil {
		panic("batch: WithRunner(nil)")
	}
	return func(h *Harness) { h.runner = r }
}

// WithClock overrides the time source used for seeds and file names.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("batch: WithClock(nil)")
	}
	return func(h *Harness) { h.now = now }
}

// WithProgressLogInterval sets the minimum spacing of progress log lines.
// Panics unless d > 0.
func WithProgressLogInterval(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("batch: WithProgressLogInterval(%s): need d > 0", d))
	}
	return func(h *Harness) { h.logEvery = d }
}

// New returns a Harness configured by opts.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger:   slog.Default(),
		runner:   trial.NewRunner(),
		now:      time.Now,
		logEvery: defaultProgressLogEvery,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.seed == nil {
		h.seed = TimeSeed(h.now)
	}
	return h
}

// Run executes m, appending one record to sink per run.
//
// Each (size, density, type, trial) instance gets one seed, one grid and
// one endpoint pair shared by every algorithm. An instance without valid
// endpoints is skipped silently. The context is checked before every run;
// on cancellation the sink is flushed and ctx.Err() is returned together
// with the partial Report.
func (h *Harness) Run(ctx context.Context, m Matrix, sink results.Sink, progress ProgressFunc) (Report, error) {
	return h.run(ctx, m, sink, progress, uuid.NewString())
}

// RunToDir creates dir/batch_results_<YYYYmmdd_HHMMSS>_<id>.csv and runs m
// into it. The file is closed before returning, also on error.
func (h *Harness) RunToDir(ctx context.Context, m Matrix, dir string, progress ProgressFunc) (Report, error) {
	if err := m.Validate(); err != nil {
		return Report{}, err
	}
	runID := uuid.NewString()
	name := fmt.Sprintf("batch_results_%s_%s.csv", h.now().Format("20060102_150405"), runID[:8])
	path := filepath.Join(dir, name)

	w, err := results.Create(path)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	rep, runErr := h.run(ctx, m, w, progress, runID)
	rep.Path = path
	if cerr := w.Close(); cerr != nil && runErr == nil {
		runErr = fmt.Errorf("%w: %w", ErrSinkWrite, cerr)
	}
	return rep, runErr
}

func (h *Harness) run(ctx context.Context, m Matrix, sink results.Sink, progress ProgressFunc, runID string) (Report, error) {
	// 1) Validate before any work.
	if err := m.Validate(); err != nil {
		return Report{}, err
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	rep := Report{RunID: runID, Total: m.Total()}
	started := time.Now()
	logger := h.logger.With("run_id", runID)
	logLimiter := rate.NewLimiter(rate.Every(h.logEvery), 1)
	logger.Info("batch started",
		"total_runs", rep.Total,
		"configs", m.Configs(),
		"algorithms", len(m.Algorithms),
	)

	finish := func(err error) (Report, error) {
		rep.Elapsed = time.Since(started)
		if ferr := sink.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrSinkWrite, ferr)
		}
		if rep.Canceled {
			logger.Warn("batch canceled", "completed", rep.Completed, "total", rep.Total)
		} else if err != nil {
			logger.Error("batch failed", "completed", rep.Completed, "error", err)
		} else {
			logger.Info("batch finished",
				"completed", rep.Completed,
				"skipped_configs", rep.Skipped,
				"elapsed", rep.Elapsed,
			)
		}
		return rep, err
	}

	// 2) size → density → type → trial → algorithm.
	for _, size := range m.Sizes {
		for _, density := range m.Densities {
			for _, mapType := range m.Types {
				for t := 0; t < m.Trials; t++ {
					seed := h.seed(t)
					g, err := mapgen.Generate(mapType, size, density, seed)
					if err != nil {
						return finish(fmt.Errorf("batch: generate %s size=%d density=%g: %w", mapType, size, density, err))
					}
					start, end, ok := mapgen.Endpoints(g)
					if !ok {
						rep.Skipped++
						h.metrics.skip()
						logger.Debug("instance skipped: no endpoints",
							"size", size, "density", density, "type", mapType.String(), "trial", t, "seed", seed)
						continue
					}
					if err = g.MarkEndpoints(start, end); err != nil {
						return finish(fmt.Errorf("batch: mark endpoints: %w", err))
					}
					meta := trial.Meta{Trial: t, MapSize: size, Density: density, MapType: mapType, Seed: seed}

					for _, alg := range m.Algorithms {
						if err = ctx.Err(); err != nil {
							rep.Canceled = true
							return finish(err)
						}
						out, rerr := h.runner.Run(alg, g, start, end)
						if rerr != nil {
							return finish(fmt.Errorf("batch: %w", rerr))
						}
						rec := out.Record(meta)
						if err = sink.Append(rec); err != nil {
							return finish(fmt.Errorf("%w: %w", ErrSinkWrite, err))
						}
						rep.Completed++
						h.metrics.observe(rec)
						h.metrics.setProgress(rep.Completed, rep.Total)
						progress(rep.Completed, rep.Total)
						if logLimiter.Allow() {
							logger.Info("batch progress", "completed", rep.Completed, "total", rep.Total)
						}
					}
				}
			}
		}
	}
	return finish(nil)
}
