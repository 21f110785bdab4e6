package tui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ponder/internal/adapters/tui"
	"go.trai.ch/ponder/internal/ui/style"
)

func TestView_Board(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := update(t, tui.NewModel(artifacts),
		tui.MsgPlan{Input: "schema", Steps: []string{"ParsedSchema", "GqlSchema"}},
		tui.MsgStepStart{SpanID: "a", Name: "ParsedSchema", StartTime: start},
		tui.MsgStepComplete{SpanID: "a", EndTime: start.Add(7 * time.Millisecond)},
	)

	view := m.View()
	assert.Contains(t, view, "ARTIFACTS")
	assert.Contains(t, view, "last change: schema")
	assert.Contains(t, view, style.Check+" ParsedSchema")
	assert.Contains(t, view, "7ms")
	assert.Contains(t, view, style.Dot+" GqlSchema")
	assert.Contains(t, view, style.Circle+" DbSchema")
	assert.Contains(t, view, "> "+style.Circle+" ParsedConfig")
}

func TestView_DetailShowsFailure(t *testing.T) {
	m := update(t, tui.NewModel(artifacts),
		tui.MsgStepStart{SpanID: "a", Name: "GqlSchema"},
		tui.MsgStepComplete{SpanID: "a", Err: errors.New("OrderDirection is reserved")},
	)

	view := m.View()
	assert.Contains(t, view, "GQL_SCHEMA")
	assert.Contains(t, view, "OrderDirection is reserved")
	assert.Contains(t, view, style.Cross+" GqlSchema")
}

func TestView_Empty(t *testing.T) {
	m := tui.NewModel(nil)
	assert.Contains(t, m.View(), "ARTIFACTS")
}
