package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		ev, ok := m.keys.event(msg)
		if !ok {
			return m, nil
		}
		m.state = m.state.Apply(ev)
		m.log.Debug("input", zap.Stringer("event", ev), zap.Stringer("view", m.state.Resource))
		if m.state.ShouldQuit {
			return m, tea.Quit
		}

	case frameMsg:
		m.snap = m.builder.Build()
		return m, frameCmd(m.frameInterval)
	}

	return m, nil
}
