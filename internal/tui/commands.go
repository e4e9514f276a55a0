package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameCmd creates a command that sends a frame message after interval
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
