package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathbench/trial"
)

// Metrics are the Prometheus collectors updated by a Harness.
type Metrics struct {
	runs     *prometheus.CounterVec
	skipped  prometheus.Counter
	nodes    *prometheus.HistogramVec
	elapsed  *prometheus.HistogramVec
	progress prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathbench_runs_total",
			Help: "Completed trial-algorithm runs",
		}, []string{"algorithm", "found"}),
		skipped: f.NewCounter(prometheus.CounterOpts{
			Name: "pathbench_skipped_configs_total",
			Help: "Problem instances skipped for lack of endpoints",
		}),
		nodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathbench_nodes_explored",
			Help:    "Positions finalized per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 11),
		}, []string{"algorithm"}),
		elapsed: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathbench_run_duration_seconds",
			Help:    "Wall-clock time per run",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"algorithm"}),
		progress: f.NewGauge(prometheus.GaugeOpts{
			Name: "pathbench_progress_ratio",
			Help: "Completed runs divided by total runs of the current batch",
		}),
	}
}

func (m *Metrics) observe(r trial.Record) {
	if m == nil {
		return
	}
	found := "false"
	if r.FoundPath {
		found = "true"
	}
	m.runs.WithLabelValues(r.Algorithm, found).Inc()
	m.nodes.WithLabelValues(r.Algorithm).Observe(float64(r.NodesExplored))
	m.elapsed.WithLabelValues(r.Algorithm).Observe(r.TimeMS / 1000)
}

func (m *Metrics) skip() {
	if m == nil {
		return
	}
	m.skipped.Inc()
}

func (m *Metrics) setProgress(done, total int) {
	if m == nil || total == 0 {
		return
	}
	m.progress.Set(float64(done) / float64(total))
}
