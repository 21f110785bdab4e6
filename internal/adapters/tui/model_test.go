package tui_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/tui"
)

var artifacts = []string{"ParsedConfig", "ParsedSchema", "GqlSchema", "DbSchema"}

func update(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}
	return m
}

func statuses(m tui.Model) []tui.RowStatus {
	out := make([]tui.RowStatus, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = r.Status
	}
	return out
}

func TestModel_PlanQueuesAffectedRows(t *testing.T) {
	m := update(t, tui.NewModel(artifacts),
		tui.MsgPlan{Input: "schema", Steps: []string{"ParsedSchema", "GqlSchema", "DbSchema"}},
	)

	assert.Equal(t, "schema", m.Input)
	assert.Equal(t, []tui.RowStatus{tui.StatusIdle, tui.StatusQueued, tui.StatusQueued, tui.StatusQueued}, statuses(m))
}

func TestModel_StepLifecycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := update(t, tui.NewModel(artifacts),
		tui.MsgPlan{Input: "schema", Steps: []string{"ParsedSchema", "GqlSchema", "DbSchema"}},
		tui.MsgStepStart{SpanID: "a", Name: "ParsedSchema", StartTime: start},
		tui.MsgStepComplete{SpanID: "a", EndTime: start.Add(4 * time.Millisecond)},
		tui.MsgStepStart{SpanID: "b", Name: "GqlSchema", StartTime: start},
		tui.MsgStepStart{SpanID: "c", Name: "DbSchema", StartTime: start},
		tui.MsgStepComplete{SpanID: "c", EndTime: start, Skipped: true},
	)

	assert.Equal(t, []tui.RowStatus{tui.StatusIdle, tui.StatusDone, tui.StatusRunning, tui.StatusSkipped}, statuses(m))
	assert.Equal(t, 4*time.Millisecond, m.Rows[1].Duration)
	assert.Equal(t, 1, m.Rows[1].Rebuilds)

	m = update(t, m, tui.MsgStepComplete{SpanID: "b", EndTime: start, Err: errors.New("collision")})
	assert.Equal(t, tui.StatusFailed, m.Rows[2].Status)
	assert.Equal(t, "collision", m.Rows[2].Err)
	assert.Equal(t, 2, m.Selected, "a failure selects its row")
}

func TestModel_FailedRowsSurviveUnrelatedPlans(t *testing.T) {
	m := update(t, tui.NewModel(artifacts),
		tui.MsgStepStart{SpanID: "a", Name: "DbSchema"},
		tui.MsgStepComplete{SpanID: "a", Err: errors.New("boom")},
		tui.MsgPlan{Input: "config", Steps: []string{"ParsedConfig"}},
	)
	assert.Equal(t, tui.StatusFailed, m.Rows[3].Status)
	assert.Equal(t, tui.StatusQueued, m.Rows[0].Status)
}

func TestModel_IgnoresUnknownSteps(t *testing.T) {
	m := update(t, tui.NewModel(artifacts),
		tui.MsgStepStart{SpanID: "x", Name: "HandlerContext"},
		tui.MsgStepComplete{SpanID: "y"},
	)
	for _, s := range statuses(m) {
		assert.Equal(t, tui.StatusIdle, s)
	}
}

func TestModel_Navigation(t *testing.T) {
	m := tui.NewModel(artifacts)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected)

	m = update(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	assert.Equal(t, 3, m.Selected)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 2, m.Selected)
}

func TestModel_Quit(t *testing.T) {
	m := tui.NewModel(artifacts)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := update(t, tui.NewModel(artifacts), tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 62, m.Viewport.Width)
	assert.Equal(t, 28, m.Viewport.Height)

	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 1})
	assert.Equal(t, 0, m.Viewport.Width)
	assert.Equal(t, 0, m.Viewport.Height)
}
