// Package orchestrator re-runs the derivation table when a watched input changes.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/engine/artifacts"
	"go.trai.ch/zerr"
)

// Orchestrator owns one artifact store and keeps it consistent with the watched inputs.
type Orchestrator struct {
	graph    *domain.Graph
	store    *artifacts.Store
	detector ports.ChangeDetector
	tracer   ports.Tracer
	logger   ports.Logger
	paths    map[domain.InputKind]string
	now      func() time.Time

	// chainMu serializes chains so no two chains touch the same slot.
	chainMu sync.Mutex

	mu       sync.Mutex
	idle     *sync.Cond
	inflight map[domain.InputKind]bool
	queued   map[domain.InputKind]bool
	// queuedForce records that a queued signal came from Bootstrap.
	queuedForce map[domain.InputKind]bool
	running     int
}

// New creates an Orchestrator for a validated graph.
// paths maps every input read by a root step to its file.
func New(
	graph *domain.Graph,
	store *artifacts.Store,
	detector ports.ChangeDetector,
	tracer ports.Tracer,
	logger ports.Logger,
	paths map[domain.InputKind]string,
) (*Orchestrator, error) {
	for _, input := range graph.Inputs() {
		if _, ok := paths[input]; !ok {
			return nil, zerr.With(domain.ErrUnknownInput, "input", input.String())
		}
	}

	o := &Orchestrator{
		graph:    graph,
		store:    store,
		detector: detector,
		tracer:   tracer,
		logger:   logger,
		paths:    paths,
		now:      time.Now,
		inflight: make(map[domain.InputKind]bool),
		queued:   make(map[domain.InputKind]bool),

		queuedForce: make(map[domain.InputKind]bool),
	}
	o.idle = sync.NewCond(&o.mu)
	return o, nil
}

// Store returns the artifact store.
func (o *Orchestrator) Store() *artifacts.Store {
	return o.store
}

// Graph returns the derivation table.
func (o *Orchestrator) Graph() *domain.Graph {
	return o.graph
}

// InputFor resolves a watched file path to its input.
func (o *Orchestrator) InputFor(path string) (domain.InputKind, bool) {
	for input, p := range o.paths {
		if p == path {
			return input, true
		}
	}
	return 0, false
}

// Paths returns the watched file of every input in bootstrap order.
func (o *Orchestrator) Paths() []string {
	paths := make([]string, 0, len(o.paths))
	for _, input := range o.graph.Inputs() {
		paths = append(paths, o.paths[input])
	}
	return paths
}

// Trigger handles one settle signal for input.
// A signal arriving while a chain for the same input runs is queued; any number of
// queued signals run as a single extra chain against the latest content.
// Trigger returns once the input has no chain in flight started by this call.
func (o *Orchestrator) Trigger(ctx context.Context, input domain.InputKind) error {
	return o.trigger(ctx, input, false)
}

// Bootstrap runs a full chain for every input regardless of recorded fingerprints.
func (o *Orchestrator) Bootstrap(ctx context.Context) error {
	for _, input := range o.graph.Inputs() {
		if err := o.trigger(ctx, input, true); err != nil {
			return err
		}
	}
	return nil
}

// Wait blocks until no chain is in flight.
func (o *Orchestrator) Wait() {
	o.mu.Lock()
	for o.running > 0 {
		o.idle.Wait()
	}
	o.mu.Unlock()
}

// Snapshot returns the current artifact states in derivation order.
func (o *Orchestrator) Snapshot() []domain.ArtifactState {
	return o.store.Snapshot()
}

func (o *Orchestrator) trigger(ctx context.Context, input domain.InputKind, force bool) error {
	path, ok := o.paths[input]
	if !ok {
		return zerr.With(domain.ErrUnknownInput, "input", input.String())
	}

	o.mu.Lock()
	if o.inflight[input] {
		o.queued[input] = true
		if force {
			o.queuedForce[input] = true
		}
		o.mu.Unlock()
		return nil
	}
	o.inflight[input] = true
	o.running++
	o.mu.Unlock()

	for {
		o.runOnce(ctx, input, path, force)

		o.mu.Lock()
		if !o.queued[input] || ctx.Err() != nil {
			o.inflight[input] = false
			o.queued[input] = false
			o.queuedForce[input] = false
			o.running--
			o.idle.Broadcast()
			o.mu.Unlock()
			return nil
		}
		force = o.queuedForce[input]
		o.queued[input] = false
		o.queuedForce[input] = false
		o.mu.Unlock()
	}
}

func (o *Orchestrator) runOnce(ctx context.Context, input domain.InputKind, path string, force bool) {
	var raw []byte
	if force {
		content, err := o.detector.Read(path)
		if err != nil {
			o.failInput(input, path, err)
			return
		}
		raw = content
	} else {
		content, changed := o.detector.Detect(path)
		if !changed {
			return
		}
		raw = content
	}

	o.chainMu.Lock()
	defer o.chainMu.Unlock()

	affected := o.graph.Affected(input)
	o.store.MarkPending(affected...)

	names := make([]string, len(affected))
	for i, kind := range affected {
		names[i] = kind.String()
	}
	o.tracer.EmitPlan(ctx, input.String(), names)

	newChain(ctx, o, affected, path, raw).run()
}

// failInput marks every artifact of an unreadable input absent.
// The recorded fingerprint is dropped so restoring the same content rebuilds them.
func (o *Orchestrator) failInput(input domain.InputKind, path string, err error) {
	err = zerr.With(zerr.Wrap(err, domain.ErrInputRead.Error()), "input", path)
	o.logger.Error(err)
	o.detector.Forget(path)

	o.chainMu.Lock()
	defer o.chainMu.Unlock()
	for _, kind := range o.graph.Affected(input) {
		o.store.Invalidate(kind, err)
	}
}
