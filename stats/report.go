package stats

import "fmt"

// Report defaults.
const (
	DefaultConfidence = 0.95
	DefaultBaseline   = "Dijkstra"
)

// ReportConfig selects the metric, confidence level and baseline of a
// FullReport. Zero values take the defaults.
type ReportConfig struct {
	Metric     Metric  `yaml:"metric"`
	Confidence float64 `yaml:"confidence"`
	Baseline   string  `yaml:"baseline"`
}

// Report bundles every analysis for rendering.
// Baseline is nil when the baseline algorithm is absent from the table.
type Report struct {
	Records    int                `yaml:"records"`
	Policy     NoPathPolicy       `yaml:"no_path_policy"`
	Config     ReportConfig       `yaml:"config"`
	Summary    []AlgorithmSummary `yaml:"summary"`
	ANOVA      ANOVAResult        `yaml:"anova"`
	PostHoc    PostHocResult      `yaml:"post_hoc"`
	Intervals  []Interval         `yaml:"confidence_intervals"`
	Conditions ConditionBreakdown `yaml:"by_condition"`
	Baseline   []Improvement      `yaml:"baseline_comparison,omitempty"`
}

// FullReport runs every analysis with cfg. A missing baseline is not an
// error; the section is left empty.
func (a *Analyzer) FullReport(cfg ReportConfig) (Report, error) {
	if cfg.Confidence == 0 {
		cfg.Confidence = DefaultConfidence
	}
	if cfg.Baseline == "" {
		cfg.Baseline = DefaultBaseline
	}

	var (
		rep = Report{Records: len(a.records), Policy: a.policy, Config: cfg, Summary: a.Summary()}
		err error
	)
	if rep.ANOVA, err = a.ANOVA(cfg.Metric); err != nil {
		return Report{}, fmt.Errorf("FullReport: %w", err)
	}
	if rep.PostHoc, err = a.PostHoc(cfg.Metric); err != nil {
		return Report{}, fmt.Errorf("FullReport: %w", err)
	}
	if rep.Intervals, err = a.ConfidenceIntervals(cfg.Confidence, cfg.Metric); err != nil {
		return Report{}, fmt.Errorf("FullReport: %w", err)
	}
	if rep.Conditions, err = a.ByCondition(cfg.Metric); err != nil {
		return Report{}, fmt.Errorf("FullReport: %w", err)
	}
	if _, ok := a.groups[cfg.Baseline]; ok {
		rep.Baseline, _ = a.BaselineComparison(cfg.Baseline)
	}
	return rep, nil
}
