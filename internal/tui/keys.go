package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/dockerdash/internal/view"
)

type keyMap struct {
	Left         key.Binding
	Right        key.Binding
	ToggleGraphs key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next view"),
		),
		ToggleGraphs: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle graphs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.ToggleGraphs, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// event maps a key press to a view event. Unbound keys are ignored.
func (k keyMap) event(msg tea.KeyMsg) (view.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return view.EventQuit, true
	case key.Matches(msg, k.ToggleGraphs):
		return view.EventToggleGraphs, true
	case key.Matches(msg, k.Left):
		return view.EventLeft, true
	case key.Matches(msg, k.Right):
		return view.EventRight, true
	default:
		return 0, false
	}
}
