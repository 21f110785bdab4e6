package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ponder/internal/ui/style"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	idleStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	runningStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	failedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	skippedStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
