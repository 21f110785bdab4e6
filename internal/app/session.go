package app

import (
	"path/filepath"

	"go.trai.ch/ponder/internal/adapters/config"
	"go.trai.ch/ponder/internal/adapters/db"
	"go.trai.ch/ponder/internal/adapters/fs"
	"go.trai.ch/ponder/internal/adapters/server"
	"go.trai.ch/ponder/internal/adapters/shell"
	"go.trai.ch/ponder/internal/adapters/typegen"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/ponder/internal/engine/artifacts"
	"go.trai.ch/ponder/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// session is one orchestrator with the path-bound adapters it drives.
type session struct {
	orch      *orchestrator.Orchestrator
	db        *db.DB
	generated string
}

func (s *session) close() error {
	return s.db.Close()
}

// resolve fills defaults and makes every path absolute.
func (o Options) resolve() (Options, error) {
	root := o.Root
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return o, zerr.Wrap(err, "failed to resolve project root")
	}
	o.Root = abs

	o.ConfigPath = inRoot(abs, o.ConfigPath, domain.ConfigFileName)
	o.SchemaPath = inRoot(abs, o.SchemaPath, domain.SchemaFileName)
	o.GeneratedDir = inRoot(abs, o.GeneratedDir, domain.DefaultGeneratedPath())
	if o.Port == 0 {
		o.Port = domain.DefaultServerPort
	}
	if o.Debounce <= 0 {
		o.Debounce = domain.DefaultDebounceWindow
	}
	return o, nil
}

func inRoot(root, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// newSession wires the derivation table for resolved options. srv may be nil.
func (a *App) newSession(opts Options, tracer ports.Tracer, srv *server.Server) (*session, error) {
	detector, err := fs.NewDetector(opts.Root, a.fingerprints, a.logger)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create change detector")
	}

	reindexer := a.reindexer
	if reindexer == nil && opts.ReindexCommand != "" {
		reindexer = shell.NewHook(opts.ReindexCommand, opts.Root, a.logger)
	}

	database := db.Open(opts.DatabaseURL, opts.Root)
	collab := orchestrator.Collaborators{
		Config:    config.NewParser(filepath.Dir(opts.ConfigPath)),
		Schema:    a.schema,
		Gql:       a.gql,
		Db:        a.dbSchema,
		Migrator:  db.NewMigrator(database),
		Context:   db.NewContextBuilder(database),
		Types:     typegen.NewGenerator(opts.GeneratedDir, a.logger),
		Reindexer: reindexer,
		Logger:    a.logger,
	}
	if srv != nil {
		collab.Server = srv
	}

	graph, err := orchestrator.NewGraph(orchestrator.DefaultSteps(collab))
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	orch, err := orchestrator.New(
		graph,
		artifacts.New(graph.Order()),
		detector,
		tracer,
		a.logger,
		map[domain.InputKind]string{
			domain.InputConfig: opts.ConfigPath,
			domain.InputSchema: opts.SchemaPath,
		},
	)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	return &session{orch: orch, db: database, generated: opts.GeneratedDir}, nil
}
