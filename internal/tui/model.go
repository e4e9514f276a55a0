package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/dockerdash/internal/snapshot"
	"github.com/rusenback/dockerdash/internal/view"
	"go.uber.org/zap"
)

// DefaultFrameInterval is the redraw period.
const DefaultFrameInterval = 100 * time.Millisecond

// Model represents the TUI application state
type Model struct {
	builder       *snapshot.Builder
	snap          snapshot.Snapshot
	state         view.State
	frameInterval time.Duration

	keys keyMap
	help help.Model

	width  int
	height int

	now func() time.Time
	log *zap.Logger
}

// frameMsg triggers a redraw from a fresh snapshot.
type frameMsg time.Time

// Options configures the dashboard model.
type Options struct {
	FrameInterval time.Duration
	Logger        *zap.Logger
}

// NewModel creates a new TUI model drawing snapshots from builder
func NewModel(builder *snapshot.Builder, opts Options) Model {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return Model{
		builder:       builder,
		snap:          builder.Build(),
		state:         view.Initial(),
		frameInterval: interval,
		keys:          defaultKeyMap(),
		help:          help.New(),
		now:           time.Now,
		log:           log,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

// State returns the current view state.
func (m Model) State() view.State {
	return m.state
}
