// Package app implements the application layer for ponder.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/ponder/internal/adapters/daemon"
	"go.trai.ch/ponder/internal/adapters/detector"
	"go.trai.ch/ponder/internal/adapters/linear"
	"go.trai.ch/ponder/internal/adapters/server"
	"go.trai.ch/ponder/internal/adapters/telemetry"
	"go.trai.ch/ponder/internal/adapters/tui"
	"go.trai.ch/ponder/internal/adapters/watcher"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/engine/orchestrator"
	"go.trai.ch/ponder/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	logger       ports.Logger
	fingerprints ports.FingerprintStore
	watcher      ports.Watcher
	schema       ports.SchemaParser
	gql          ports.GqlBuilder
	dbSchema     ports.DbBuilder

	reindexer  ports.Reindexer
	dialStatus func(socketPath string) (ports.StatusClient, error)
	stderr     io.Writer
}

// New creates a new App instance.
func New(
	log ports.Logger,
	fingerprints ports.FingerprintStore,
	w ports.Watcher,
	schema ports.SchemaParser,
	gql ports.GqlBuilder,
	dbSchema ports.DbBuilder,
) *App {
	return &App{
		logger:       log,
		fingerprints: fingerprints,
		watcher:      w,
		schema:       schema,
		gql:          gql,
		dbSchema:     dbSchema,
		dialStatus: func(socketPath string) (ports.StatusClient, error) {
			return daemon.Dial(socketPath)
		},
		stderr: os.Stderr,
	}
}

// WithReindexer installs the hook run after every HandlerContext rebuild.
func (a *App) WithReindexer(r ports.Reindexer) *App {
	a.reindexer = r
	return a
}

// WithStatusDialer replaces the status socket client.
// This is primarily used for testing.
func (a *App) WithStatusDialer(dial func(socketPath string) (ports.StatusClient, error)) *App {
	a.dialStatus = dial
	return a
}

// WithStderr redirects renderer output.
// This is primarily used for testing.
func (a *App) WithStderr(w io.Writer) *App {
	a.stderr = w
	return a
}

// Options configures Dev and Codegen.
type Options struct {
	Root         string
	ConfigPath   string
	SchemaPath   string
	GeneratedDir string
	DatabaseURL  string
	Port         int
	NoServer     bool
	Debounce     time.Duration
	OutputMode   string

	// ReindexCommand runs after every HandlerContext rebuild unless a Reindexer is installed.
	ReindexCommand string
}

// Dev bootstraps every artifact, then regenerates on each settled change
// until ctx is cancelled or the user quits the board.
//
//nolint:cyclop // orchestration function
func (a *App) Dev(ctx context.Context, opts Options) error {
	opts, err := opts.resolve()
	if err != nil {
		return err
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	var renderer ports.Renderer
	var board *tui.Renderer
	if mode == detector.ModeTUI {
		names := make([]string, 0, len(domain.ArtifactKinds()))
		for _, kind := range domain.ArtifactKinds() {
			names = append(names, kind.String())
		}
		board = tui.NewRenderer(names, os.Stdin, a.stderr)
		renderer = board
	} else {
		renderer = linear.NewRenderer(a.stderr)
	}

	tracer := telemetry.NewOTelTracer(renderer)
	defer func() { _ = tracer.Shutdown(context.WithoutCancel(ctx)) }()

	var srv *server.Server
	if !opts.NoServer {
		srv = server.New(fmt.Sprintf(":%d", opts.Port), a.logger)
		defer func() { _ = srv.Close() }()
	}

	sess, err := a.newSession(opts, tracer, srv)
	if err != nil {
		return err
	}
	defer func() { _ = sess.close() }()

	status := daemon.NewServer(filepath.Join(opts.Root, domain.DefaultSocketPath()))
	unsubscribe := sess.orch.Store().Subscribe(status.Observe)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := renderer.Start(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if board != nil {
			select {
			case <-board.Done():
				cancel()
			case <-ctx.Done():
			}
		} else {
			<-ctx.Done()
		}
		_ = renderer.Stop()
		return renderer.Wait()
	})

	g.Go(func() error {
		return status.Serve(ctx)
	})

	g.Go(func() error {
		return a.watch(ctx, sess.orch, opts.Debounce)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watch runs the bootstrap and then feeds settled file changes to the orchestrator.
func (a *App) watch(ctx context.Context, orch *orchestrator.Orchestrator, window time.Duration) error {
	if err := a.watcher.Start(ctx, orch.Paths()); err != nil {
		return zerr.Wrap(err, "failed to watch inputs")
	}
	defer func() { _ = a.watcher.Stop() }()

	debouncer := watcher.NewDebouncer(window, func(path string) {
		input, ok := orch.InputFor(path)
		if !ok {
			return
		}
		if err := orch.Trigger(ctx, input); err != nil {
			a.logger.Error(err)
		}
	})
	defer debouncer.Stop()

	events := make(chan struct{})
	go func() {
		defer close(events)
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	if err := orch.Bootstrap(ctx); err != nil {
		return err
	}
	for _, p := range orch.Paths() {
		a.logger.Info("watching " + p)
	}

	select {
	case <-ctx.Done():
	case <-events:
	}
	debouncer.Stop()
	orch.Wait()
	return nil
}

// Codegen runs every chain once and fails if any artifact is left absent.
func (a *App) Codegen(ctx context.Context, opts Options) error {
	opts, err := opts.resolve()
	if err != nil {
		return err
	}

	renderer := linear.NewRenderer(a.stderr)
	tracer := telemetry.NewOTelTracer(renderer)
	defer func() { _ = tracer.Shutdown(context.WithoutCancel(ctx)) }()

	sess, err := a.newSession(opts, tracer, nil)
	if err != nil {
		return err
	}
	defer func() { _ = sess.close() }()

	if err := sess.orch.Bootstrap(ctx); err != nil {
		return err
	}
	sess.orch.Wait()

	var absent []string
	for _, st := range sess.orch.Snapshot() {
		if st.Status != domain.StatusPresent {
			absent = append(absent, st.Kind.String())
		}
	}
	if len(absent) > 0 {
		return zerr.With(domain.ErrCodegenFailed, "artifacts", strings.Join(absent, ", "))
	}
	a.logger.Info("generated sources in " + sess.generated)
	return nil
}

// Status prints the artifact states of the dev session running in root.
func (a *App) Status(ctx context.Context, root string, w io.Writer) error {
	client, err := a.dialStatus(filepath.Join(root, domain.DefaultSocketPath()))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	rows, err := client.Artifacts(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		state := domain.StatusAbsent
		if row.Serving {
			state = domain.StatusPresent
		}
		_, _ = fmt.Fprintf(w, "%s %-16s %s\n", style.StatusIcon(state.String()), row.Artifact, state)
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Root         string
	Store        bool
	Generated    bool
	GeneratedDir string
}

// Clean removes the fingerprint store and the generated sources based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Store {
		remove(filepath.Join(options.Root, domain.DefaultStorePath()), "fingerprint store")
	}
	if options.Generated {
		dir := options.GeneratedDir
		if dir == "" {
			dir = domain.DefaultGeneratedPath()
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(options.Root, dir)
		}
		remove(dir, "generated sources")
	}

	return errs
}
