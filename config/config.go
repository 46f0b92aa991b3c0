// Package config loads pathbench experiment files.
//
// A file is YAML and overlays Default: keys that are absent keep their
// default value, unknown keys are rejected.
//
//	matrix:
//	  sizes: [50, 100]
//	  densities: [0.1, 0.25, 0.4]
//	  types: [random, clustered]
//	  trials: 10
//	  algorithms: [Dijkstra, "A*", Greedy]
//	output_dir: results
//	log:
//	  level: info
//	analysis:
//	  metric: time_ms
//	  confidence: 0.95
//	  baseline: Dijkstra
//	  no_path: keep
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathbench/batch"
	"github.com/katalvlaran/pathbench/logging"
	"github.com/katalvlaran/pathbench/stats"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultTrials           = 10
	DefaultOutputDir        = "results"
	DefaultProgressInterval = 5 * time.Second
)

// Analysis selects what `analyze` reports.
type Analysis struct {
	Metric     stats.Metric       `yaml:"metric"`
	Confidence float64            `yaml:"confidence"`
	Baseline   string             `yaml:"baseline"`
	NoPath     stats.NoPathPolicy `yaml:"no_path"`
}

// Config is a complete experiment description.
type Config struct {
	Matrix           batch.Matrix   `yaml:"matrix"`
	OutputDir        string         `yaml:"output_dir"`
	MetricsAddr      string         `yaml:"metrics_addr,omitempty"`
	ProgressInterval time.Duration  `yaml:"progress_interval"`
	Log              logging.Config `yaml:"log"`
	Analysis         Analysis       `yaml:"analysis"`
}

// Default returns the quick preset with stock analysis settings.
func Default() Config {
	return Config{
		Matrix:           batch.QuickMatrix(DefaultTrials),
		OutputDir:        DefaultOutputDir,
		ProgressInterval: DefaultProgressInterval,
		Log:              logging.Config{Level: logging.LevelInfo},
		Analysis: Analysis{
			Metric:     stats.TimeMS,
			Confidence: stats.DefaultConfidence,
			Baseline:   stats.DefaultBaseline,
			NoPath:     stats.Keep,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Matrix.Validate(); err != nil {
		return err
	}
	switch {
	case c.OutputDir == "":
		return fmt.Errorf("output_dir is empty: %w", ErrInvalid)
	case c.ProgressInterval <= 0:
		return fmt.Errorf("progress_interval=%s: %w", c.ProgressInterval, ErrInvalid)
	case !(c.Analysis.Confidence > 0 && c.Analysis.Confidence < 1):
		return fmt.Errorf("analysis.confidence=%g: %w", c.Analysis.Confidence, stats.ErrBadConfidence)
	case c.Analysis.Baseline == "":
		return fmt.Errorf("analysis.baseline is empty: %w", ErrInvalid)
	}
	return nil
}

// Save writes c as YAML, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// StatsOptions converts the analysis section into Analyzer options.
func (c Config) StatsOptions() []stats.Option {
	return []stats.Option{stats.WithNoPathPolicy(c.Analysis.NoPath)}
}

// ReportConfig converts the analysis section into a FullReport config.
func (c Config) ReportConfig() stats.ReportConfig {
	return stats.ReportConfig{
		Metric:     c.Analysis.Metric,
		Confidence: c.Analysis.Confidence,
		Baseline:   c.Analysis.Baseline,
	}
}
