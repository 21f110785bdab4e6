package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ponder/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr without metadata",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "accumulated metadata",
			err:          zerr.With(zerr.With(zerr.New("base"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata on a standard error moves to it",
			err:          zerr.With(errors.New("open ponder.schema.graphql"), "path", "ponder.schema.graphql"),
			wantMessages: []string{"open ponder.schema.graphql"},
			wantMetadata: []map[string]any{{"path": "ponder.schema.graphql"}},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, e.Message)
				metadata = append(metadata, e.Metadata)
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	entries := []logger.ErrorEntry{
		{Message: "derivation step failed", Metadata: map[string]any{"step": "DbSchema", "input": "ponder.schema.graphql"}},
		{Message: "entity has no id field\nadd an id: ID! field", Metadata: map[string]any{"entity": "Account"}},
		{Message: "root cause"},
	}

	want := "Error: derivation step failed\n" +
		"       input: ponder.schema.graphql\n" +
		"       step: DbSchema\n" +
		"\n" +
		"  Caused by:\n" +
		"    → entity has no id field\n" +
		"      add an id: ID! field\n" +
		"      entity: Account\n" +
		"    → root cause"

	assert.Equal(t, want, logger.FormatErrorEntries(entries))
}
