package orchestrator

import (
	"context"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

type outcome struct {
	kind      domain.ArtifactKind
	value     any
	err       error
	skipped   bool
	published bool
	span      ports.Span
}

// chain is the run state of one regeneration over the artifacts affected by an input.
// Only the loop goroutine writes to the store.
type chain struct {
	o         *Orchestrator
	ctx       context.Context
	path      string
	raw       []byte
	steps     map[domain.ArtifactKind]domain.Step
	order     []domain.ArtifactKind
	inDegree  map[domain.ArtifactKind]int
	started   map[domain.ArtifactKind]bool
	ready     []domain.ArtifactKind
	active    int
	resultsCh chan outcome
}

func newChain(
	ctx context.Context,
	o *Orchestrator,
	affected []domain.ArtifactKind,
	path string,
	raw []byte,
) *chain {
	steps := make(map[domain.ArtifactKind]domain.Step, len(affected))
	for _, kind := range affected {
		step, _ := o.graph.Step(kind)
		steps[kind] = step
	}

	inDegree := make(map[domain.ArtifactKind]int, len(affected))
	var ready []domain.ArtifactKind
	for _, kind := range affected {
		degree := 0
		for _, dep := range steps[kind].Requires {
			if _, ok := steps[dep]; ok {
				degree++
			}
		}
		inDegree[kind] = degree
		if degree == 0 {
			ready = append(ready, kind)
		}
	}

	return &chain{
		o:         o,
		ctx:       ctx,
		path:      path,
		raw:       raw,
		steps:     steps,
		order:     affected,
		inDegree:  inDegree,
		started:   make(map[domain.ArtifactKind]bool, len(affected)),
		ready:     ready,
		resultsCh: make(chan outcome, 2*len(affected)),
	}
}

func (c *chain) run() {
	for !c.isDone() {
		c.schedule()

		if c.isDone() {
			break
		}

		if c.ctx.Err() != nil {
			// Steps already running finish; nothing new starts.
			c.handle(<-c.resultsCh)
			continue
		}

		select {
		case out := <-c.resultsCh:
			c.handle(out)
		case <-c.ctx.Done():
		}
	}

	for _, kind := range c.order {
		if !c.started[kind] {
			c.o.store.Invalidate(kind, zerr.With(domain.ErrChainInterrupted, "input", c.path))
		}
	}
}

func (c *chain) isDone() bool {
	return c.active == 0 && (len(c.ready) == 0 || c.ctx.Err() != nil)
}

func (c *chain) schedule() {
	for len(c.ready) > 0 && c.ctx.Err() == nil {
		kind := c.ready[0]
		c.ready = c.ready[1:]

		c.active++
		c.started[kind] = true
		go c.executeStep(c.steps[kind])
	}
}

func (c *chain) executeStep(step domain.Step) {
	ctx, span := c.o.tracer.Start(c.ctx, step.Kind.String())

	in := domain.StepInput{Deps: make(map[domain.ArtifactKind]domain.Artifact, len(step.Requires))}
	for _, dep := range step.Requires {
		art, ok := c.o.store.Get(dep)
		if !ok {
			span.SetAttribute(ports.SkippedAttribute, true)
			c.resultsCh <- outcome{
				kind:    step.Kind,
				err:     zerr.With(domain.ErrDependencyAbsent, "dependency", dep.String()),
				skipped: true,
				span:    span,
			}
			return
		}
		in.Deps[dep] = art
	}
	if step.Root {
		in.Path = c.path
		in.Raw = c.raw
	}

	value, err := step.Derive(ctx, in)
	if err != nil {
		span.RecordError(err)
	}
	c.resultsCh <- outcome{kind: step.Kind, value: value, err: err, span: span}
}

func (c *chain) handle(out outcome) {
	switch {
	case out.published:
		c.finish(out)
	case out.skipped:
		c.o.store.Invalidate(out.kind, out.err)
		c.finish(out)
	case out.err != nil:
		err := zerr.With(
			zerr.With(zerr.Wrap(out.err, domain.ErrStepFailed.Error()), "step", out.kind.String()),
			"input", c.path,
		)
		c.o.store.Invalidate(out.kind, err)
		c.o.logger.Error(err)
		c.finish(out)
	default:
		c.o.store.Put(out.kind, out.value)
		step := c.steps[out.kind]
		if step.Root {
			c.o.detector.MarkParsed(c.path, c.o.now())
		}
		if len(step.Publish) == 0 {
			c.finish(out)
			return
		}
		go c.publish(step, out)
	}
}

// publish runs the sinks of a stored artifact. The step stays active until they return.
func (c *chain) publish(step domain.Step, out outcome) {
	for _, p := range step.Publish {
		if err := p.Run(c.ctx, out.value); err != nil {
			c.o.logger.Error(zerr.With(
				zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "publisher", p.Name),
				"step", step.Kind.String(),
			))
		}
	}
	c.resultsCh <- outcome{kind: out.kind, published: true, span: out.span}
}

// finish ends the step and releases its dependents.
func (c *chain) finish(out outcome) {
	out.span.End()
	c.active--

	for _, dep := range c.o.graph.Dependents(out.kind) {
		if _, ok := c.steps[dep]; !ok {
			continue
		}
		c.inDegree[dep]--
		if c.inDegree[dep] == 0 {
			c.ready = append(c.ready, dep)
		}
	}
}
