package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/ponder/internal/ui/style"
)

// View renders the board and the detail pane of the selected row.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.board(), m.detailPane())
}

//nolint:gocritic // hugeParam ignored
func (m Model) board() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("ARTIFACTS") + "\n")
	if m.Input != "" {
		s.WriteString(hintStyle.Render("last change: "+m.Input) + "\n")
	}
	s.WriteString("\n")

	for i, row := range m.Rows {
		marker := "  "
		if i == m.Selected {
			marker = "> "
		}
		line := fmt.Sprintf("%s %s", m.icon(row), row.Name)
		if row.Status == StatusDone || row.Status == StatusFailed {
			line += " " + hintStyle.Render(row.Duration.Round(time.Millisecond).String())
		}
		s.WriteString(marker + line + "\n")
	}

	s.WriteString("\n" + hintStyle.Render("↑/↓ select • q quit"))
	return boardStyle.Render(s.String())
}

//nolint:gocritic // hugeParam ignored
func (m Model) icon(row Row) string {
	switch row.Status {
	case StatusRunning:
		return m.Spinner.View()
	case StatusQueued:
		return runningStyle.Render(style.Dot)
	case StatusDone:
		return doneStyle.Render(style.Check)
	case StatusFailed:
		return failedStyle.Render(style.Cross)
	case StatusSkipped:
		return skippedStyle.Render(style.Tilde)
	default:
		return idleStyle.Render(style.Circle)
	}
}

//nolint:gocritic // hugeParam ignored
func (m Model) detailPane() string {
	if len(m.Rows) == 0 {
		return ""
	}
	header := titleStyle.Render(strings.ToUpper(m.Rows[m.Selected].Name))
	body := m.detail()
	if m.Viewport.Height > 0 {
		body = m.Viewport.View()
	}
	return detailStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

//nolint:gocritic // hugeParam ignored
func (m Model) detail() string {
	if len(m.Rows) == 0 {
		return ""
	}
	row := m.Rows[m.Selected]
	switch row.Status {
	case StatusFailed:
		return failedStyle.Render(row.Err)
	case StatusSkipped:
		return skippedStyle.Render("skipped: a required artifact is absent")
	case StatusDone:
		return fmt.Sprintf("rebuilt %d time(s), last in %s", row.Rebuilds, row.Duration.Round(time.Millisecond))
	default:
		return string(row.Status)
	}
}
