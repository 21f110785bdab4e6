package domain_test

import (
	"context"
	"slices"
	"testing"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/zerr"
)

func noop(context.Context, domain.StepInput) (any, error) { return struct{}{}, nil }

func derivationTable() []domain.Step {
	return []domain.Step{
		{Kind: domain.ParsedConfig, Root: true, Source: domain.InputConfig, Derive: noop},
		{Kind: domain.ParsedSchema, Root: true, Source: domain.InputSchema, Derive: noop},
		{Kind: domain.GqlSchema, Requires: []domain.ArtifactKind{domain.ParsedSchema}, Derive: noop},
		{Kind: domain.DbSchema, Requires: []domain.ArtifactKind{domain.ParsedSchema}, Derive: noop},
		{Kind: domain.MigratedDb, Requires: []domain.ArtifactKind{domain.DbSchema}, Derive: noop},
		{
			Kind:     domain.HandlerContext,
			Requires: []domain.ArtifactKind{domain.ParsedConfig, domain.DbSchema, domain.MigratedDb},
			Derive:   noop,
		},
	}
}

func buildGraph(t *testing.T, steps []domain.Step) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for i := range steps {
		if err := g.AddStep(&steps[i]); err != nil {
			t.Fatalf("unexpected error adding %s: %v", steps[i].Kind, err)
		}
	}
	return g
}

func TestGraph_AddStep(t *testing.T) {
	g := domain.NewGraph()
	step := domain.Step{Kind: domain.ParsedConfig, Root: true, Source: domain.InputConfig, Derive: noop}

	if err := g.AddStep(&step); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddStep(&step)
	if err == nil {
		t.Fatal("expected error when adding duplicate step, got nil")
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if artifact, ok := zErr.Metadata()["artifact"].(string); !ok || artifact != "ParsedConfig" {
		t.Errorf("expected metadata artifact=ParsedConfig, got %v", zErr.Metadata()["artifact"])
	}
}

func TestGraph_AddStep_RejectsMalformedSteps(t *testing.T) {
	tests := []struct {
		name string
		step domain.Step
		want error
	}{
		{
			name: "root with requirements",
			step: domain.Step{
				Kind:     domain.ParsedConfig,
				Root:     true,
				Requires: []domain.ArtifactKind{domain.ParsedSchema},
			},
			want: domain.ErrRootStepHasRequirements,
		},
		{
			name: "no source",
			step: domain.Step{Kind: domain.GqlSchema},
			want: domain.ErrStepWithoutSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.NewGraph().AddStep(&tt.step)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			zErr, ok := err.(*zerr.Error)
			if !ok {
				t.Fatalf("expected *zerr.Error, got %T", err)
			}
			if zErr.Message() != tt.want.Error() {
				t.Errorf("expected %q, got %q", tt.want.Error(), zErr.Message())
			}
		})
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := buildGraph(t, []domain.Step{
		{Kind: domain.GqlSchema, Requires: []domain.ArtifactKind{domain.DbSchema}, Derive: noop},
		{Kind: domain.DbSchema, Requires: []domain.ArtifactKind{domain.GqlSchema}, Derive: noop},
	})

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	cycle, ok := zErr.Metadata()["cycle"].(string)
	if !ok || cycle != "GqlSchema -> DbSchema -> GqlSchema" {
		t.Errorf("unexpected cycle metadata %v", zErr.Metadata()["cycle"])
	}
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := buildGraph(t, []domain.Step{
		{Kind: domain.GqlSchema, Requires: []domain.ArtifactKind{domain.ParsedSchema}, Derive: noop},
	})

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for missing dependency, got nil")
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if dep := zErr.Metadata()["dependency"]; dep != "ParsedSchema" {
		t.Errorf("expected dependency=ParsedSchema, got %v", dep)
	}
}

func TestGraph_Walk(t *testing.T) {
	g := buildGraph(t, derivationTable())
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	position := make(map[domain.ArtifactKind]int)
	i := 0
	for step := range g.Walk() {
		position[step.Kind] = i
		i++
	}

	if i != g.StepCount() {
		t.Fatalf("expected %d steps, walked %d", g.StepCount(), i)
	}
	for step := range g.Walk() {
		for _, dep := range step.Requires {
			if position[dep] >= position[step.Kind] {
				t.Errorf("%s walked before its dependency %s", step.Kind, dep)
			}
		}
	}
}

func TestGraph_Walk_EarlyStop(t *testing.T) {
	g := buildGraph(t, derivationTable())
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for range g.Walk() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 steps, got %d", count)
	}
}

func TestGraph_Affected(t *testing.T) {
	g := buildGraph(t, derivationTable())
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		input domain.InputKind
		want  []domain.ArtifactKind
	}{
		{
			name:  "config change",
			input: domain.InputConfig,
			want:  []domain.ArtifactKind{domain.ParsedConfig, domain.HandlerContext},
		},
		{
			name:  "schema change",
			input: domain.InputSchema,
			want: []domain.ArtifactKind{
				domain.ParsedSchema,
				domain.GqlSchema,
				domain.DbSchema,
				domain.MigratedDb,
				domain.HandlerContext,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Affected(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGraph_DependentsAndInputs(t *testing.T) {
	g := buildGraph(t, derivationTable())
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.ArtifactKind{domain.MigratedDb, domain.HandlerContext}
	if got := g.Dependents(domain.DbSchema); !slices.Equal(got, want) {
		t.Errorf("expected dependents %v, got %v", want, got)
	}

	wantInputs := []domain.InputKind{domain.InputConfig, domain.InputSchema}
	if got := g.Inputs(); !slices.Equal(got, wantInputs) {
		t.Errorf("expected inputs %v, got %v", wantInputs, got)
	}
}
