package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/grid"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/engine/search"
)

// MsgFrame advances the search by one budget slice.
type MsgFrame struct{}

// Model is the bubbletea model of the watch view.
type Model struct {
	Grid      *grid.Grid
	Start     domain.Point
	Goal      domain.Point
	Heuristic ports.Heuristic[domain.Point]
	Renderer  ports.Renderer
	Search    *search.Budgeted[domain.Point]

	Budget        time.Duration
	FrameInterval time.Duration

	// Frames counts the slices run for the current search.
	Frames int
	// Route is the provisional route while searching and the final path after.
	Route  domain.PathResult[domain.Point]
	Done   bool
	Err    error
	Width  int
	Height int

	disableTick bool
	exitOnDone  bool
}

// Init starts the search and schedules the first frame.
func (m *Model) Init() tea.Cmd {
	m.restart()
	return m.tick()
}

func (m *Model) restart() {
	m.Search.Start(m.Start, m.Goal, m.Heuristic)
	m.Frames = 0
	m.Route = domain.PathResult[domain.Point]{}
	m.Done = false
	m.Err = nil
}

func (m *Model) tick() tea.Cmd {
	if m.disableTick {
		return nil
	}
	return tea.Tick(m.FrameInterval, func(time.Time) tea.Msg {
		return MsgFrame{}
	})
}

// Update handles key presses, resizes and frames.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.Done {
				m.restart()
				return m, m.tick()
			}
		}

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height

	case MsgFrame:
		return m, m.frame()
	}

	return m, nil
}

func (m *Model) frame() tea.Cmd {
	if m.Done {
		return nil
	}

	finished := m.Search.Step(m.Grid, nil, m.Budget)
	m.Frames++
	if !finished {
		if partial, ok := m.Search.PartialResult(); ok {
			m.Route = partial
		}
		return m.tick()
	}

	m.Done = true
	m.Route, m.Err = m.Search.TakeResult()
	if m.exitOnDone {
		return tea.Quit
	}
	return nil
}
