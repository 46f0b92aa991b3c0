package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/batch"
	"github.com/katalvlaran/pathbench/config"
	"github.com/katalvlaran/pathbench/logging"
	"github.com/katalvlaran/pathbench/mapgen"
	"github.com/katalvlaran/pathbench/search"
)

type runFlags struct {
	quick       bool
	full        bool
	sizes       []int
	densities   []float64
	types       []string
	algorithms  []string
	trials      int
	out         string
	metricsAddr string
	noTUI       bool
}

func newRunCmd(g *globals) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an experiment matrix and write a results table",
		Long: `Run every (size, density, map type, trial, algorithm) combination and stream
one CSV row per run into <out>/batch_results_<timestamp>_<id>.csv.

Interrupt (Ctrl+C) stops after the current run; rows written so far are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			if err = f.apply(cmd, &cfg); err != nil {
				return err
			}
			return runBatch(cmd, cfg, logger, f.noTUI)
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&f.quick, "quick", false, "use the quick preset (2 sizes, 3 densities, random+clustered)")
	fl.BoolVar(&f.full, "full", false, "use the full preset (30 000 runs)")
	fl.IntSliceVar(&f.sizes, "sizes", nil, "map sizes")
	fl.Float64SliceVar(&f.densities, "densities", nil, "obstacle densities in [0,1]")
	fl.StringSliceVar(&f.types, "types", nil, "map types: random, clustered, maze, mixed")
	fl.StringSliceVar(&f.algorithms, "algorithms", nil, "algorithms: dijkstra, a*, greedy, bidirectional")
	fl.IntVar(&f.trials, "trials", 0, "trials per configuration")
	fl.StringVarP(&f.out, "out", "o", "", "output directory")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fl.BoolVar(&f.noTUI, "no-tui", false, "log progress instead of drawing a progress bar")
	cmd.MarkFlagsMutuallyExclusive("quick", "full")
	return cmd
}

// apply overlays presets and explicit flags onto cfg, then validates.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	switch {
	case f.full:
		cfg.Matrix = batch.FullMatrix()
	case f.quick:
		cfg.Matrix = batch.QuickMatrix(cfg.Matrix.Trials)
	}

	fl := cmd.Flags()
	if fl.Changed("sizes") {
		cfg.Matrix.Sizes = f.sizes
	}
	if fl.Changed("densities") {
		cfg.Matrix.Densities = f.densities
	}
	if fl.Changed("types") {
		types := make([]mapgen.Strategy, 0, len(f.types))
		for _, name := range f.types {
			s, err := mapgen.ParseStrategy(name)
			if err != nil {
				return err
			}
			types = append(types, s)
		}
		cfg.Matrix.Types = types
	}
	if fl.Changed("algorithms") {
		algs := make([]search.Algorithm, 0, len(f.algorithms))
		for _, name := range f.algorithms {
			a, err := search.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			algs = append(algs, a)
		}
		cfg.Matrix.Algorithms = algs
	}
	if fl.Changed("trials") {
		cfg.Matrix.Trials = f.trials
	}
	if fl.Changed("out") {
		cfg.OutputDir = f.out
	}
	if fl.Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	return cfg.Validate()
}

func runBatch(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, noTUI bool) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := batch.NewMetrics(reg)
	if cfg.MetricsAddr != "" {
		stop := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer stop()
	}

	tui := !noTUI && isTerminal(cmd.OutOrStdout())
	if tui {
		// The progress bar owns the terminal; keep only warnings and errors.
		quiet := cfg.Log
		if quiet.Level < logging.LevelWarn {
			quiet.Level = logging.LevelWarn
		}
		logger = logging.New(quiet)
	}

	h := batch.New(
		batch.WithLogger(logger),
		batch.WithMetrics(metrics),
		batch.WithProgressLogInterval(cfg.ProgressInterval),
	)

	var (
		rep batch.Report
		err error
	)
	if tui {
		rep, err = runWithProgressBar(ctx, cancel, cmd, h, cfg)
	} else {
		rep, err = h.RunToDir(ctx, cfg.Matrix, cfg.OutputDir, nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderBatchReport(rep))
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("batch canceled after %d of %d runs", rep.Completed, rep.Total)
	}
	return err
}

// runWithProgressBar runs the harness on its own goroutine and feeds a
// bubbletea progress bar until it finishes.
func runWithProgressBar(ctx context.Context, cancel context.CancelFunc, cmd *cobra.Command, h *batch.Harness, cfg config.Config) (batch.Report, error) {
	p := tea.NewProgram(
		newProgressModel(cfg.Matrix.Total(), cancel),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	result := make(chan batchDoneMsg, 1)
	go func() {
		rep, err := h.RunToDir(ctx, cfg.Matrix, cfg.OutputDir, func(done, total int) {
			p.Send(progressMsg{done: done, total: total})
		})
		msg := batchDoneMsg{report: rep, err: err}
		result <- msg
		p.Send(msg)
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		done := <-result
		return done.report, err
	}
	done := <-result
	return done.report, done.err
}

// serveMetrics exposes reg on addr until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
