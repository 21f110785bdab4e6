package tui

import (
	"context"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/ponder/internal/core/ports"
)

// Renderer implements ports.Renderer on a Bubble Tea program.
type Renderer struct {
	model Model
	opts  []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer for the given artifact rows.
// A nil in disables keyboard input.
func NewRenderer(artifacts []string, in io.Reader, out io.Writer) *Renderer {
	return &Renderer{
		model: NewModel(artifacts),
		opts:  []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out), tea.WithoutSignalHandler()},
		done:  make(chan struct{}),
	}
}

// Start runs the program until ctx is cancelled, Stop is called or the user quits.
func (r *Renderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.opts...)
	r.program = tea.NewProgram(r.model, opts...)

	go func() {
		_, err := r.program.Run()
		r.mu.Lock()
		if err != nil && ctx.Err() == nil {
			r.err = err
		}
		r.mu.Unlock()
		close(r.done)
	}()
	return nil
}

// Stop asks the program to quit.
func (r *Renderer) Stop() error {
	if p := r.current(); p != nil {
		p.Quit()
	}
	return nil
}

// Wait blocks until the program has exited.
func (r *Renderer) Wait() error {
	if r.current() == nil {
		return nil
	}
	<-r.done
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Done is closed when the program exits.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// OnPlanEmit implements ports.Renderer.
func (r *Renderer) OnPlanEmit(input string, steps []string) {
	r.send(MsgPlan{Input: input, Steps: steps})
}

// OnStepStart implements ports.Renderer.
func (r *Renderer) OnStepStart(spanID, name string, startTime time.Time) {
	r.send(MsgStepStart{SpanID: spanID, Name: name, StartTime: startTime})
}

// OnStepComplete implements ports.Renderer.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error, skipped bool) {
	r.send(MsgStepComplete{SpanID: spanID, EndTime: endTime, Err: err, Skipped: skipped})
}

func (r *Renderer) current() *tea.Program {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.program
}

// send drops messages before Start and after the program exits.
func (r *Renderer) send(msg tea.Msg) {
	p := r.current()
	if p == nil {
		return
	}
	select {
	case <-r.done:
	default:
		p.Send(msg)
	}
}
