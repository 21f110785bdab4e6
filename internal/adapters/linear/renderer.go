// Package linear provides a synchronous, line-oriented renderer for CI and piped output.
package linear

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/ui/output"
	"go.trai.ch/ponder/internal/ui/style"
)

// Renderer implements ports.Renderer with one line per finished step.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu    sync.Mutex
	steps map[string]stepState // spanID -> step
}

type stepState struct {
	name      string
	startTime time.Time
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to w. A nil w writes to stderr.
func NewRenderer(w io.Writer) *Renderer {
	out := output.NewWithProfile(w, output.ColorProfileANSI)
	return &Renderer{
		w:      out,
		output: out,
		steps:  make(map[string]stepState),
	}
}

// Start is a no-op; the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop forgets steps that never completed.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.steps)
	return nil
}

// Wait is a no-op; the renderer writes synchronously.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the artifacts about to be rebuilt for an input.
func (r *Renderer) OnPlanEmit(input string, steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.output.String(fmt.Sprintf("[%s]", input)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s %s rebuilding %s\n", prefix, style.Arrow, strings.Join(steps, ", "))
}

// OnStepStart records the step start time.
func (r *Renderer) OnStepStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[spanID] = stepState{name: name, startTime: startTime}
}

// OnStepComplete prints the outcome of a step.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error, skipped bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	delete(r.steps, spanID)

	prefix := fmt.Sprintf("[%s]", step.name)
	duration := endTime.Sub(step.startTime).Round(time.Millisecond)

	switch {
	case skipped:
		symbol := r.output.String(style.Tilde).Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.w, "%s %s skipped, a required artifact is absent\n", prefix, symbol)
	case err != nil:
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s failed after %v: %v\n", prefix, symbol, duration, err)
	default:
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.w, "%s %s rebuilt in %v\n", prefix, symbol, duration)
	}
}
