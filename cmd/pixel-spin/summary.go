package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/pixel-spin/question"
)

var (
	styleSummaryBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#333333")).Padding(0, 1)
	styleSummaryTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#39ff14")).Bold(true)
	styleSummaryLast  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0f0f0")).Bold(true)
	styleSummaryDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// sessionSummary is printed after the terminal is restored
type sessionSummary struct {
	Session string
	Spins   int64
	Last    question.Item
}

// render returns the styled summary, empty when nothing was spun
func (s sessionSummary) render() string {
	if s.Spins == 0 {
		return ""
	}

	lines := []string{
		styleSummaryTitle.Render(fmt.Sprintf("> %d SPIN%s", s.Spins, plural(s.Spins))),
	}
	if !s.Last.IsZero() {
		last := strings.TrimSpace(s.Last.Icon + " " + s.Last.Primary)
		lines = append(lines, styleSummaryLast.Render(last))
		if s.Last.Secondary != "" {
			lines = append(lines, styleSummaryDim.Render(s.Last.Secondary))
		}
	}
	lines = append(lines, styleSummaryDim.Render("session "+s.Session))

	return styleSummaryBox.Render(strings.Join(lines, "\n"))
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "S"
}
