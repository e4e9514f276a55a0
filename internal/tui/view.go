package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/dockerdash/internal/view"
)

const defaultWidth = 80

// View renders the TUI interface
func (m Model) View() string {
	if m.state.ShouldQuit {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderGrid(width),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// renderHeader shows container totals and the resource views with the
// selected one highlighted
func (m Model) renderHeader() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("🐳 Containers"))
	s.WriteString(mutedStyle.Render(fmt.Sprintf(" %d total, %d running  ", len(m.snap.Containers), m.snap.Running())))

	for _, r := range view.Resources() {
		if r == m.state.Resource {
			s.WriteString(selectedStyle.Render(r.String()))
		} else {
			s.WriteString(mutedStyle.Padding(0, 1).Render(r.String()))
		}
	}

	if !m.state.ShowGraphs {
		s.WriteString(mutedStyle.Render("  graphs hidden"))
	}

	return s.String()
}
