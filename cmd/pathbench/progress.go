package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathbench/batch"
)

const (
	barPadding  = 2
	barMaxWidth = 72
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

// progressMsg reports one finished run.
type progressMsg struct{ done, total int }

// batchDoneMsg carries the harness result and ends the program.
type batchDoneMsg struct {
	report batch.Report
	err    error
}

type progressModel struct {
	bar       progress.Model
	done      int
	total     int
	cancel    func()
	canceling bool
	finished  bool
}

func newProgressModel(total int, cancel func()) progressModel {
	return progressModel{
		bar:    progress.New(progress.WithDefaultGradient()),
		total:  total,
		cancel: cancel,
	}
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Stop after the current run; the harness reports back with batchDoneMsg.
			if !m.canceling && m.cancel != nil {
				m.cancel()
			}
			m.canceling = true
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = max(min(msg.Width-barPadding*2, barMaxWidth), 10)
		return m, nil

	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil

	case batchDoneMsg:
		m.finished = true
		m.done = msg.report.Completed
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) ratio() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	pad := strings.Repeat(" ", barPadding)
	var b strings.Builder
	b.WriteString("\n" + pad + titleStyle.Render("pathbench run") + "\n\n")
	b.WriteString(pad + m.bar.ViewAs(m.ratio()) + "\n\n")
	b.WriteString(pad + fmt.Sprintf("%d / %d runs", m.done, m.total) + "\n")
	if m.canceling {
		b.WriteString(pad + warnStyle.Render("stopping after the current run...") + "\n")
	} else {
		b.WriteString(pad + helpStyle.Render("q / ctrl+c: stop") + "\n")
	}
	return b.String()
}
