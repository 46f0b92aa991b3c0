package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathbench/stats"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func newAnalyzeCmd(g *globals) *cobra.Command {
	var (
		metric     string
		confidence float64
		noPath     string
		baseline   string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "analyze <results.csv>",
		Short: "Compare algorithms in a results table",
		Long: `Print per-algorithm summaries, a one-way ANOVA, Bonferroni-corrected pairwise
t-tests, confidence intervals, per-condition breakdowns and the improvement
over a baseline algorithm.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("metric") {
				if cfg.Analysis.Metric, err = stats.ParseMetric(metric); err != nil {
					return err
				}
			}
			if fl.Changed("no-path") {
				if cfg.Analysis.NoPath, err = stats.ParseNoPathPolicy(noPath); err != nil {
					return err
				}
			}
			if fl.Changed("confidence") {
				cfg.Analysis.Confidence = confidence
			}
			if fl.Changed("baseline") {
				cfg.Analysis.Baseline = baseline
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			a, err := stats.Load(args[0], cfg.StatsOptions()...)
			if err != nil {
				return err
			}
			logger.Debug("results loaded", "path", args[0], "records", a.Len(), "algorithms", a.Algorithms())

			rep, err := a.FullReport(cfg.ReportConfig())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case formatYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err = enc.Encode(rep); err != nil {
					return err
				}
				return enc.Close()
			case formatText:
				_, err = fmt.Fprint(out, renderReport(rep))
				return err
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
			}
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&metric, "metric", "m", "", "metric for ANOVA, t-tests, intervals and breakdowns: time_ms, nodes_explored, path_length")
	fl.Float64Var(&confidence, "confidence", stats.DefaultConfidence, "confidence level in (0,1)")
	fl.StringVar(&noPath, "no-path", "", "rows without a path: keep, exclude or penalize")
	fl.StringVar(&baseline, "baseline", stats.DefaultBaseline, "baseline algorithm for the improvement table")
	fl.StringVarP(&format, "format", "f", formatText, "output format: text or yaml")
	return cmd
}
