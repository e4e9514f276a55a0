package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/dockerdash/internal/model"
	"github.com/rusenback/dockerdash/internal/tui/views"
)

const (
	// cardMinWidth decides how many cards fit side by side.
	cardMinWidth = 44
	// Below minimalCardWidth a card shows only the status dot and name.
	minimalCardWidth = 30
)

// renderGrid lays the container cards out in rows that fill width
func (m Model) renderGrid(width int) string {
	containers := m.snap.Containers
	if len(containers) == 0 {
		return mutedStyle.Render("No containers")
	}

	cols := columns(width, cardMinWidth, len(containers))
	cardWidth := width / cols

	rows := make([]string, 0, (len(containers)+cols-1)/cols)
	for i := 0; i < len(containers); i += cols {
		end := i + cols
		if end > len(containers) {
			end = len(containers)
		}

		cards := make([]string, 0, cols)
		for _, c := range containers[i:end] {
			cards = append(cards, m.renderCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one container card of the given total width
func (m Model) renderCard(c model.Container, width int) string {
	if width < minimalCardWidth {
		return renderMinimalCard(c, width)
	}

	// border and padding take two columns each side
	inner := width - 4
	lines := []string{
		views.StatusDot(c) + " " + titleStyle.Render(truncate(views.Title(c), inner-2)),
	}
	for _, detail := range views.Details(c, m.now()) {
		lines = append(lines, truncate(detail, inner))
	}

	if out, ok := views.FailedHealthCheck(c); ok {
		lines = append(lines, errorStyle.Render(truncate("Last health check failed: "+out, inner)))
	}

	if m.state.ShowGraphs && c.Running() {
		set := m.snap.History[c.ID]
		lines = append(lines, "", renderChart(set.Window(m.state.Resource), m.state.Resource, inner))
	}

	return cardStyle.
		BorderForeground(views.StatusColor(c)).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func renderMinimalCard(c model.Container, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Render(views.StatusDot(c) + " " + truncate(c.FirstName(), width-2))
}
