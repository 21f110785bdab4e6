package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/watcher"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_EmitsEventsForWatchedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.graphql")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(schema, []byte("type A { id: ID! }"), 0o600))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, []string{schema}))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(schema, []byte("type B { id: ID! }"), 0o600))

	select {
	case ev := <-events:
		assert.Equal(t, schema, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watch event")
	}

	cancel()
	for ev := range events {
		assert.Equal(t, schema, ev.Path)
	}
}
