package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pathforge/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.Mist)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	foundStyle = lipgloss.NewStyle().
			Foreground(style.Green).
			Bold(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(style.Red).
			Bold(true)

	searchingStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
