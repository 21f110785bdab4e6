package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/app"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller) (*app.App, *mocks.MockLogger) {
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mockLogger,
		mocks.NewMockFingerprintStore(ctrl),
		mocks.NewMockWatcher(ctrl),
		mocks.NewMockSchemaParser(ctrl),
		mocks.NewMockGqlBuilder(ctrl),
		mocks.NewMockDbBuilder(ctrl),
	)
	return application, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, mockLogger := newComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, mockLogger := newComponents(ctrl)

	client := mocks.NewMockStatusClient(ctrl)
	client.EXPECT().Artifacts(gomock.Any()).Return(nil, domain.ErrStatusUnavailable)
	client.EXPECT().Close().Return(nil)
	mockLogger.EXPECT().Error(domain.ErrStatusUnavailable)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}
	withClient := func(a *app.App) {
		a.WithStatusDialer(func(string) (ports.StatusClient, error) { return client, nil })
	}

	exitCode := run(context.Background(), []string{"status", "-C", t.TempDir()}, io.Discard, provider, withClient)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Cleanup verifies that the provider cleanup runs after the command.
func TestRun_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	application, mockLogger := newComponents(ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() { cleaned = true }, nil
	}

	require.Equal(t, 0, run(context.Background(), []string{"version"}, io.Discard, provider))
	assert.True(t, cleaned)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("PONDER_TEST_A=local\n"), 0o600))
	require.NoError(t, os.WriteFile(shared, []byte("PONDER_TEST_A=shared\nPONDER_TEST_B=shared\n"), 0o600))

	t.Setenv("PONDER_TEST_A", "")
	t.Setenv("PONDER_TEST_B", "")
	require.NoError(t, os.Unsetenv("PONDER_TEST_A"))
	require.NoError(t, os.Unsetenv("PONDER_TEST_B"))

	loadEnv([]string{local, shared, filepath.Join(dir, "missing")})

	assert.Equal(t, "local", os.Getenv("PONDER_TEST_A"))
	assert.Equal(t, "shared", os.Getenv("PONDER_TEST_B"))
}
