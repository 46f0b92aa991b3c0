package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/pathbench/batch"
	"github.com/katalvlaran/pathbench/grid"
	"github.com/katalvlaran/pathbench/stats"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginTop(1)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)

	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	visitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	pathStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	endpointStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

// Grid overlay markers.
const (
	markVisited = "o"
	markPath    = "*"
)

// num formats a statistic; NaN prints as n/a.
func num(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func yesNo(b bool) string {
	if b {
		return goodStyle.Render("yes")
	}
	return badStyle.Render("no")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// renderBatchReport is the one-paragraph summary printed after `run`.
func renderBatchReport(r batch.Report) string {
	var b strings.Builder
	status := goodStyle.Render("complete")
	if r.Canceled {
		status = badStyle.Render("canceled")
	}
	fmt.Fprintf(&b, "batch %s: %d/%d runs, %d skipped configurations, %s\n",
		status, r.Completed, r.Total, r.Skipped, r.Elapsed.Round(time.Millisecond))
	if r.RunID != "" {
		fmt.Fprintf(&b, "run id:  %s\n", r.RunID)
	}
	if r.Path != "" {
		fmt.Fprintf(&b, "results: %s\n", r.Path)
	}
	return b.String()
}

// renderReport formats a full statistical report as styled text tables.
func renderReport(rep stats.Report) string {
	var b strings.Builder
	metric := rep.Config.Metric.String()

	fmt.Fprintf(&b, "%d records, no-path policy %s\n", rep.Records, rep.Policy)

	b.WriteString(sectionStyle.Render("Summary") + "\n")
	sum := newTable("algorithm", "n", "nodes mean", "nodes std", "path mean", "path std", "time ms mean", "time ms std")
	for _, s := range rep.Summary {
		sum.Row(s.Algorithm, strconv.Itoa(s.TimeMS.N),
			num(s.NodesExplored.Mean, 1), num(s.NodesExplored.Std, 1),
			num(s.PathLength.Mean, 1), num(s.PathLength.Std, 1),
			num(s.TimeMS.Mean, 3), num(s.TimeMS.Std, 3))
	}
	b.WriteString(sum.String() + "\n")

	a := rep.ANOVA
	b.WriteString(sectionStyle.Render("ANOVA ("+metric+")") + "\n")
	fmt.Fprintf(&b, "F = %s, p = %s, significant: %s, eta² = %s (%s)\n",
		num(a.F, 3), num(a.P, 4), yesNo(a.Significant), num(a.EtaSquared, 3), a.Effect)

	ph := rep.PostHoc
	b.WriteString(sectionStyle.Render(fmt.Sprintf("Pairwise t-tests (%s, Bonferroni α = %s)", metric, num(ph.Alpha, 4))) + "\n")
	if len(ph.Comparisons) == 0 {
		b.WriteString("fewer than two algorithms\n")
	} else {
		pt := newTable("pair", "mean diff", "% diff", "t", "p", "significant", "cohen's d", "effect")
		for _, c := range ph.Comparisons {
			pt.Row(c.Algorithm1+" vs "+c.Algorithm2,
				num(c.MeanDiff, 3), num(c.PercentDiff, 1), num(c.T, 3), num(c.P, 4),
				yesNo(c.Significant), num(c.CohensD, 3), c.Effect)
		}
		b.WriteString(pt.String() + "\n")
	}

	b.WriteString(sectionStyle.Render(fmt.Sprintf("%s%% confidence intervals (%s)", num(rep.Config.Confidence*100, 0), metric)) + "\n")
	ct := newTable("algorithm", "n", "mean", "std err", "lower", "upper", "width")
	for _, iv := range rep.Intervals {
		ct.Row(iv.Algorithm, strconv.Itoa(iv.N), num(iv.Mean, 3), num(iv.StdErr, 3),
			num(iv.Lower, 3), num(iv.Upper, 3), num(iv.Width, 3))
	}
	b.WriteString(ct.String() + "\n")

	for _, f := range stats.Factors {
		cells := rep.Conditions[f]
		if len(cells) == 0 {
			continue
		}
		b.WriteString(sectionStyle.Render(fmt.Sprintf("%s by %s", metric, f)) + "\n")
		t := newTable("algorithm", f, "mean", "std", "n")
		for _, c := range cells {
			t.Row(c.Algorithm, c.Level, num(c.Mean, 3), num(c.Std, 3), strconv.Itoa(c.N))
		}
		b.WriteString(t.String() + "\n")
	}

	if len(rep.Baseline) > 0 {
		b.WriteString(sectionStyle.Render("Improvement over "+rep.Config.Baseline) + "\n")
		t := newTable("algorithm", "time %", "nodes %", "mean time ms", "mean nodes")
		for _, im := range rep.Baseline {
			t.Row(im.Algorithm, num(im.TimeImprovement, 1), num(im.NodesImprovement, 1),
				num(im.MeanTimeMS, 3), num(im.MeanNodesExplored, 1))
		}
		b.WriteString(t.String() + "\n")
	}
	return b.String()
}

// renderGrid draws g with visited cells and the path overlaid.
// Path wins over visited; start and end markers win over both.
func renderGrid(g *grid.Grid, visited grid.PositionSet, path []grid.Position, styled bool) string {
	onPath := make(grid.PositionSet, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	n := g.Size()
	var b strings.Builder
	var p grid.Position
	for p.Row = 0; p.Row < n; p.Row++ {
		for p.Col = 0; p.Col < n; p.Col++ {
			c := g.At(p)
			switch {
			case c == grid.Start || c == grid.End:
				b.WriteString(paint(endpointStyle, c.String()))
			case c == grid.Obstacle:
				b.WriteString(paint(obstacleStyle, c.String()))
			case onPath.Has(p):
				b.WriteString(paint(pathStyle, markPath))
			case visited.Has(p):
				b.WriteString(paint(visitedStyle, markVisited))
			default:
				b.WriteString(c.String())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
