package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored lines into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("watching ponder.config.yaml")

	goldie.New(t).Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("fingerprint store unreadable")

	goldie.New(t).Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error_Simple(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(errors.New("connection refused"))

	goldie.New(t).Assert(t, "error_simple", buf.Bytes())
}

func TestLogger_Error_StepFailure(t *testing.T) {
	lg, buf := newTestLogger(t)

	cause := zerr.With(zerr.New("unknown network"), "network", "base")
	err := zerr.Wrap(cause, "derivation step failed")
	err = zerr.With(err, "step", "ParsedConfig")
	err = zerr.With(err, "input", "ponder.config.yaml")
	lg.Error(err)

	goldie.New(t).Assert(t, "error_step_failure", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("ready")
	lg.Error(zerr.Wrap(errors.New("boom"), "migration failed"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "ready", info["msg"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failed))
	assert.Equal(t, "operation failed", failed["msg"])
	assert.Equal(t, map[string]any{"msg": "migration failed", "cause": "boom"}, failed["error"])
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.Info("json")
	lg.SetJSON(false)
	lg.Info("pretty")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, json.Valid(lines[0]))
	assert.Equal(t, "pretty", string(lines[1]))
}

func TestLogger_SetOutput(t *testing.T) {
	lg, first := newTestLogger(t)
	lg.Info("one")

	second := &bytes.Buffer{}
	lg.SetOutput(second)
	lg.Info("two")

	assert.Equal(t, "one\n", first.String())
	assert.Equal(t, "two\n", second.String())
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info(fmt.Sprintf("message %d", i))
			lg.SetOutput(buf)
		}()
	}
	wg.Wait()
}
