package daemon_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/daemon"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/engine/artifacts"
)

// socketPath keeps the path short enough for a unix socket.
func socketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "ponder")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, ".ponder", domain.SocketFileName)
}

func serve(t *testing.T, s *daemon.Server, path string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "socket is removed on shutdown")
	})

	require.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func dial(t *testing.T, path string) *daemon.Client {
	t.Helper()
	c, err := daemon.Dial(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func serving(rows []ports.ArtifactStatus) map[string]bool {
	out := make(map[string]bool, len(rows))
	for _, r := range rows {
		out[r.Artifact] = r.Serving
	}
	return out
}

func TestServer_ReportsArtifactStates(t *testing.T) {
	path := socketPath(t)
	s := daemon.NewServer(path)
	serve(t, s, path)
	c := dial(t, path)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := c.Artifacts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, len(domain.ArtifactKinds()))
	assert.Equal(t, domain.ParsedConfig.String(), rows[0].Artifact)
	for _, r := range rows {
		assert.False(t, r.Serving, r.Artifact)
	}

	s.Observe(domain.ArtifactState{Kind: domain.ParsedConfig, Status: domain.StatusPresent})
	s.Observe(domain.ArtifactState{Kind: domain.GqlSchema, Status: domain.StatusPending})

	rows, err = c.Artifacts(ctx)
	require.NoError(t, err)
	got := serving(rows)
	assert.True(t, got[domain.ParsedConfig.String()])
	assert.False(t, got[domain.GqlSchema.String()])
}

func TestServer_ObservesStore(t *testing.T) {
	path := socketPath(t)
	s := daemon.NewServer(path)
	store := artifacts.New(domain.ArtifactKinds())
	unsubscribe := store.Subscribe(s.Observe)
	defer unsubscribe()
	serve(t, s, path)
	c := dial(t, path)

	store.Put(domain.HandlerContext, "hc")
	store.Put(domain.MigratedDb, "db")
	store.Invalidate(domain.MigratedDb, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rows, err := c.Artifacts(ctx)
	require.NoError(t, err)
	got := serving(rows)
	assert.True(t, got[domain.HandlerContext.String()])
	assert.False(t, got[domain.MigratedDb.String()])
}

func TestServer_ReplacesStaleSocket(t *testing.T) {
	path := socketPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("stale"), domain.FilePerm))

	serve(t, daemon.NewServer(path), path)
	c := dial(t, path)

	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, err := c.Artifacts(ctx)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestClient_NoSession(t *testing.T) {
	c := dial(t, socketPath(t))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := c.Artifacts(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStatusUnavailable.Error())
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "ponder.artifact.HandlerContext", daemon.ServiceName(domain.HandlerContext))
}
