// Package tui renders a live board of the artifacts rebuilt by the dev loop.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	boardWidth  = 34
	boardMargin = 4
)

// RowStatus is the state of one artifact row.
type RowStatus string

const (
	// StatusIdle means the artifact was not touched by the last change.
	StatusIdle RowStatus = "idle"
	// StatusQueued means the artifact is planned but not started.
	StatusQueued RowStatus = "queued"
	// StatusRunning means the artifact is being derived.
	StatusRunning RowStatus = "running"
	// StatusDone means the last derivation succeeded.
	StatusDone RowStatus = "done"
	// StatusFailed means the last derivation failed.
	StatusFailed RowStatus = "failed"
	// StatusSkipped means a required artifact was absent.
	StatusSkipped RowStatus = "skipped"
)

// Row is one artifact on the board.
type Row struct {
	Name     string
	Status   RowStatus
	Started  time.Time
	Duration time.Duration
	Err      string
	Rebuilds int
}

// Model is the board state.
type Model struct {
	Rows     []Row
	Input    string
	Selected int
	Spinner  spinner.Model
	Viewport viewport.Model

	index map[string]int
	spans map[string]int
}

// NewModel creates a board with one idle row per artifact name.
func NewModel(artifacts []string) Model {
	m := Model{
		Rows:     make([]Row, len(artifacts)),
		Spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(runningStyle)),
		Viewport: viewport.New(0, 0),
		index:    make(map[string]int, len(artifacts)),
		spans:    make(map[string]int),
	}
	for i, name := range artifacts {
		m.Rows[i] = Row{Name: name, Status: StatusIdle}
		m.index[name] = i
	}
	return m
}

// Init starts the spinner.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.Selected > 0 {
				m.Selected--
			}
		case "down", "j":
			if m.Selected < len(m.Rows)-1 {
				m.Selected++
			}
		}

	case tea.WindowSizeMsg:
		m.Viewport.Width = max(msg.Width-boardWidth-boardMargin, 0)
		m.Viewport.Height = max(msg.Height-2, 0)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgPlan:
		m.Input = msg.Input
		for i := range m.Rows {
			if m.Rows[i].Status != StatusFailed {
				m.Rows[i].Status = StatusIdle
			}
		}
		for _, name := range msg.Steps {
			if i, ok := m.index[name]; ok {
				m.Rows[i].Status = StatusQueued
			}
		}

	case MsgStepStart:
		if i, ok := m.index[msg.Name]; ok {
			m.Rows[i].Status = StatusRunning
			m.Rows[i].Started = msg.StartTime
			m.spans[msg.SpanID] = i
		}

	case MsgStepComplete:
		i, ok := m.spans[msg.SpanID]
		if !ok {
			break
		}
		delete(m.spans, msg.SpanID)
		row := &m.Rows[i]
		row.Duration = msg.EndTime.Sub(row.Started)
		row.Err = ""
		switch {
		case msg.Skipped:
			row.Status = StatusSkipped
		case msg.Err != nil:
			row.Status = StatusFailed
			row.Err = msg.Err.Error()
			m.Selected = i
		default:
			row.Status = StatusDone
			row.Rebuilds++
		}
	}

	m.Viewport.SetContent(m.detail())
	return m, nil
}
