// Package domain contains the core models of the regeneration engine: watched inputs,
// derived artifacts and the static derivation table that links them.
package domain

import (
	"context"
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// DeriveFunc computes an artifact value from its inputs. It must not have side effects
// beyond reading what it needs; effects belong in a Publisher.
type DeriveFunc func(ctx context.Context, in StepInput) (any, error)

// Publisher is an effectful sink run after a successful derivation.
// The step counts as finished only after every publisher returned.
type Publisher struct {
	Name string
	Run  func(ctx context.Context, value any) error
}

// StepInput carries what a derivation step consumes.
type StepInput struct {
	// Path and Raw are set for steps sourced from a watched input.
	Path string
	Raw  []byte
	// Deps holds the present artifacts listed in Step.Requires.
	Deps map[ArtifactKind]Artifact
}

// Dep returns a required artifact value as T.
func Dep[T any](in StepInput, kind ArtifactKind) (T, bool) {
	a, ok := in.Deps[kind]
	if !ok {
		var zero T
		return zero, false
	}
	return ValueAs[T](a)
}

// Step is one row of the derivation table.
type Step struct {
	Kind ArtifactKind
	// Source is the watched input a root step reads. Only meaningful when Root is set.
	Source InputKind
	Root   bool
	// Requires lists the artifacts that must be present before Derive runs.
	Requires []ArtifactKind
	Derive   DeriveFunc
	Publish  []Publisher
}

// Graph is the validated derivation table.
type Graph struct {
	steps          map[ArtifactKind]Step
	dependents     map[ArtifactKind][]ArtifactKind
	executionOrder []ArtifactKind
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		steps:      make(map[ArtifactKind]Step),
		dependents: make(map[ArtifactKind][]ArtifactKind),
	}
}

// AddStep adds a step to the graph.
// It returns an error if a step for the same artifact already exists.
func (g *Graph) AddStep(s *Step) error {
	if _, exists := g.steps[s.Kind]; exists {
		return zerr.With(ErrStepAlreadyExists, "artifact", s.Kind.String())
	}
	if s.Root && len(s.Requires) > 0 {
		return zerr.With(ErrRootStepHasRequirements, "artifact", s.Kind.String())
	}
	if !s.Root && len(s.Requires) == 0 {
		return zerr.With(ErrStepWithoutSource, "artifact", s.Kind.String())
	}
	g.steps[s.Kind] = *s
	return nil
}

// Validate checks for cycles using a topological sort and indexes dependents.
// The resulting order is deterministic: ties are broken by artifact kind.
func (g *Graph) Validate() error {
	g.executionOrder = make([]ArtifactKind, 0, len(g.steps))
	g.dependents = make(map[ArtifactKind][]ArtifactKind, len(g.steps))
	visited := make(map[ArtifactKind]int) // 0: unvisited, 1: visiting, 2: visited
	var path []ArtifactKind

	var visit func(u ArtifactKind) error
	visit = func(u ArtifactKind) error {
		visited[u] = 1
		path = append(path, u)

		step, exists := g.steps[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range step.Requires {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, kind := range g.sortedKinds() {
		if visited[kind] == 0 {
			if err := visit(kind); err != nil {
				return err
			}
		}
	}

	for _, kind := range g.executionOrder {
		for _, dep := range g.steps[kind].Requires {
			g.dependents[dep] = append(g.dependents[dep], kind)
		}
	}

	return nil
}

func (g *Graph) sortedKinds() []ArtifactKind {
	kinds := make([]ArtifactKind, 0, len(g.steps))
	for kind := range g.steps {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []ArtifactKind, dep ArtifactKind) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk returns an iterator that yields steps in topological order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, kind := range g.executionOrder {
			if !yield(g.steps[kind]) {
				return
			}
		}
	}
}

// Step returns the step producing the given artifact.
func (g *Graph) Step(kind ArtifactKind) (Step, bool) {
	s, ok := g.steps[kind]
	return s, ok
}

// StepCount returns the number of steps in the graph.
func (g *Graph) StepCount() int {
	return len(g.steps)
}

// Order returns the artifact kinds in topological order.
func (g *Graph) Order() []ArtifactKind {
	return slices.Clone(g.executionOrder)
}

// Dependents returns the artifacts that directly require kind.
func (g *Graph) Dependents(kind ArtifactKind) []ArtifactKind {
	return g.dependents[kind]
}

// Inputs returns the watched inputs read by root steps.
func (g *Graph) Inputs() []InputKind {
	var inputs []InputKind
	for _, kind := range g.executionOrder {
		step := g.steps[kind]
		if step.Root && !slices.Contains(inputs, step.Source) {
			inputs = append(inputs, step.Source)
		}
	}
	return inputs
}

// Affected returns every artifact that transitively depends on input,
// including the root steps reading it, in topological order.
func (g *Graph) Affected(input InputKind) []ArtifactKind {
	marked := make(map[ArtifactKind]bool)
	for _, kind := range g.executionOrder {
		step := g.steps[kind]
		if step.Root && step.Source == input {
			marked[kind] = true
			continue
		}
		for _, dep := range step.Requires {
			if marked[dep] {
				marked[kind] = true
				break
			}
		}
	}

	affected := make([]ArtifactKind, 0, len(marked))
	for _, kind := range g.executionOrder {
		if marked[kind] {
			affected = append(affected, kind)
		}
	}
	return affected
}
