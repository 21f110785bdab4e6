package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic,
// allowing the same event stream to drive either a rich TUI or linear logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called when a chain is planned for a changed input.
	// steps lists the artifacts to rebuild in execution order.
	OnPlanEmit(input string, steps []string)

	// OnStepStart is called when a derivation step begins.
	OnStepStart(spanID, name string, startTime time.Time)

	// OnStepComplete is called when a derivation step finishes.
	// err is nil on success; skipped is set when a dependency was absent.
	OnStepComplete(spanID string, endTime time.Time, err error, skipped bool)
}
