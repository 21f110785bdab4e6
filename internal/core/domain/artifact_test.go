package domain_test

import (
	"testing"

	"go.trai.ch/ponder/internal/core/domain"
)

func TestArtifactKind_String(t *testing.T) {
	want := []string{"ParsedConfig", "ParsedSchema", "GqlSchema", "DbSchema", "MigratedDb", "HandlerContext"}
	kinds := domain.ArtifactKinds()
	if len(kinds) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(kinds))
	}
	for i, kind := range kinds {
		if got := kind.String(); got != want[i] {
			t.Errorf("kind %d: expected %q, got %q", i, want[i], got)
		}
		parsed, ok := domain.ParseArtifactKind(want[i])
		if !ok || parsed != kind {
			t.Errorf("ParseArtifactKind(%q) = %v, %v", want[i], parsed, ok)
		}
	}
	if _, ok := domain.ParseArtifactKind("handler_context"); ok {
		t.Error("expected snake_case names to be rejected")
	}
}

func TestValueAs(t *testing.T) {
	art := domain.Artifact{Kind: domain.GqlSchema, Value: &domain.GqlSchemaDef{SDL: "type Query"}}
	gql, ok := domain.ValueAs[*domain.GqlSchemaDef](art)
	if !ok || gql.SDL != "type Query" {
		t.Errorf("expected GqlSchemaDef value, got %v", art.Value)
	}
	if _, ok := domain.ValueAs[*domain.DbSchemaDef](art); ok {
		t.Error("expected a mismatched type to report false")
	}
}
