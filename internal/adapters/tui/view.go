package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pathforge/internal/ui/style"
)

// View renders the header, the grid with the current route and a help line.
func (m *Model) View() string {
	var board strings.Builder
	if err := m.Renderer.RenderPath(&board, m.Grid, m.Route.Path); err != nil {
		board.Reset()
		board.WriteString(err.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("WATCH %s → %s", m.Start, m.Goal)),
		m.status(),
		"",
		strings.TrimRight(board.String(), "\n"),
		"",
		m.help(),
	)
}

func (m *Model) status() string {
	stats := statusStyle.Render(fmt.Sprintf("frames %d · expanded %d", m.Frames, m.Search.Expanded()))
	switch {
	case m.Err != nil:
		return failedStyle.Render(style.Cross+" "+m.Err.Error()) + "  " + stats
	case !m.Done:
		line := fmt.Sprintf("%s searching", style.Tilde)
		if len(m.Route.Path) > 0 {
			line += fmt.Sprintf(" · %.2f left", m.Route.Estimate)
		}
		return searchingStyle.Render(line) + "  " + stats
	case m.Route.Found():
		return foundStyle.Render(fmt.Sprintf("%s found · cost %.2f", style.Check, m.Route.Cost)) + "  " + stats
	default:
		return failedStyle.Render(fmt.Sprintf("%s %s", style.Cross, m.Route.Status)) + "  " + stats
	}
}

func (m *Model) help() string {
	if m.Done {
		return helpStyle.Render("r restart · q quit")
	}
	return helpStyle.Render("q quit")
}
