// Package shell runs a user command after every HandlerContext rebuild.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables describing the rebuilt context.
const (
	EnvEntities  = "PONDER_ENTITIES"
	EnvContracts = "PONDER_CONTRACTS"
)

var _ ports.Reindexer = (*Hook)(nil)

// Hook implements ports.Reindexer by running a shell command.
type Hook struct {
	command string
	dir     string
	logger  ports.Logger
}

// NewHook creates a Hook that runs command with sh -c in dir.
func NewHook(command, dir string, logger ports.Logger) *Hook {
	return &Hook{command: command, dir: dir, logger: logger}
}

// Reindex runs the command. Its stdout is logged as info and its stderr as errors.
func (h *Hook) Reindex(ctx context.Context, hc *domain.Context) error {
	if strings.TrimSpace(h.command) == "" {
		return nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", h.command) //nolint:gosec // user provided command
	cmd.Dir = h.dir
	cmd.Env = resolveEnvironment(os.Environ(), map[string]string{
		EnvEntities:  strings.Join(hc.Entities(), ","),
		EnvContracts: strings.Join(contractNames(hc), ","),
	})

	stdout := &logWriter{logger: h.logger, level: "info"}
	stderr := &logWriter{logger: h.logger, level: "error"}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stdout.Flush()
	stderr.Flush()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, domain.ErrHookFailed.Error()), "exit_code", exitCode)
	}
	return nil
}

func contractNames(hc *domain.Context) []string {
	names := make([]string, 0, len(hc.Contracts))
	for _, c := range hc.Contracts {
		names = append(names, c.Name)
	}
	return names
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string

	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line; keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Flush emits a trailing line that has no newline.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if w.level == "info" {
		w.logger.Info(line)
		return
	}
	w.logger.Error(zerr.New(line))
}

// resolveEnvironment overlays overrides on the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; overridden {
			continue
		}
		result = append(result, entry)
	}
	for k, v := range overrides {
		result = append(result, k+"="+v)
	}
	return result
}
