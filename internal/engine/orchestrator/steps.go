package orchestrator

import (
	"context"
	"fmt"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Collaborators are the derivation functions and sinks behind the default table.
// Types, Server, Reindexer and Logger are optional.
type Collaborators struct {
	Config    ports.ConfigParser
	Schema    ports.SchemaParser
	Gql       ports.GqlBuilder
	Db        ports.DbBuilder
	Migrator  ports.Migrator
	Context   ports.ContextBuilder
	Types     ports.TypeGenerator
	Server    ports.SchemaServer
	Reindexer ports.Reindexer
	Logger    ports.Logger
}

// DefaultSteps returns the derivation table of a ponder project.
//
//	ParsedConfig   <- config file
//	ParsedSchema   <- schema file
//	GqlSchema      <- ParsedSchema
//	DbSchema       <- ParsedSchema
//	MigratedDb     <- DbSchema
//	HandlerContext <- ParsedConfig, DbSchema, MigratedDb
func DefaultSteps(c Collaborators) []domain.Step {
	return []domain.Step{
		{
			Kind:   domain.ParsedConfig,
			Root:   true,
			Source: domain.InputConfig,
			Derive: func(_ context.Context, in domain.StepInput) (any, error) {
				return c.Config.ParseConfig(in.Raw)
			},
			Publish: c.configPublishers(),
		},
		{
			Kind:   domain.ParsedSchema,
			Root:   true,
			Source: domain.InputSchema,
			Derive: func(_ context.Context, in domain.StepInput) (any, error) {
				return c.Schema.ParseSchema(in.Raw)
			},
		},
		{
			Kind:     domain.GqlSchema,
			Requires: []domain.ArtifactKind{domain.ParsedSchema},
			Derive: func(_ context.Context, in domain.StepInput) (any, error) {
				schema, err := dep[*domain.Schema](in, domain.ParsedSchema)
				if err != nil {
					return nil, err
				}
				return c.Gql.BuildGqlSchema(schema)
			},
			Publish: c.gqlPublishers(),
		},
		{
			Kind:     domain.DbSchema,
			Requires: []domain.ArtifactKind{domain.ParsedSchema},
			Derive: func(_ context.Context, in domain.StepInput) (any, error) {
				schema, err := dep[*domain.Schema](in, domain.ParsedSchema)
				if err != nil {
					return nil, err
				}
				return c.Db.BuildDbSchema(schema)
			},
		},
		{
			Kind:     domain.MigratedDb,
			Requires: []domain.ArtifactKind{domain.DbSchema},
			Derive: func(ctx context.Context, in domain.StepInput) (any, error) {
				schema, err := dep[*domain.DbSchemaDef](in, domain.DbSchema)
				if err != nil {
					return nil, err
				}
				return c.Migrator.Migrate(ctx, schema)
			},
			Publish: c.migrationPublishers(),
		},
		{
			Kind:     domain.HandlerContext,
			Requires: []domain.ArtifactKind{domain.ParsedConfig, domain.DbSchema, domain.MigratedDb},
			Derive: func(ctx context.Context, in domain.StepInput) (any, error) {
				cfg, err := dep[*domain.Config](in, domain.ParsedConfig)
				if err != nil {
					return nil, err
				}
				schema, err := dep[*domain.DbSchemaDef](in, domain.DbSchema)
				if err != nil {
					return nil, err
				}
				return c.Context.BuildHandlerContext(ctx, cfg, schema)
			},
			Publish: c.contextPublishers(),
		},
	}
}

// NewGraph builds and validates a graph from steps.
func NewGraph(steps []domain.Step) (*domain.Graph, error) {
	g := domain.NewGraph()
	for i := range steps {
		if err := g.AddStep(&steps[i]); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (c Collaborators) configPublishers() []domain.Publisher {
	if c.Types == nil {
		return nil
	}
	return []domain.Publisher{
		publisher("contract types", c.Types.GenerateContractTypes),
		publisher("handler types", c.Types.GenerateHandlerTypes),
	}
}

func (c Collaborators) gqlPublishers() []domain.Publisher {
	var pubs []domain.Publisher
	if c.Types != nil {
		pubs = append(pubs,
			publisher("schema file", c.Types.GenerateSchema),
			publisher("entity types", c.Types.GenerateEntityTypes),
		)
	}
	if c.Server != nil {
		pubs = append(pubs, domain.Publisher{
			Name: "server restart",
			Run: func(ctx context.Context, value any) error {
				schema, ok := value.(*domain.GqlSchemaDef)
				if !ok {
					return unexpected(value)
				}
				return c.Server.Restart(ctx, schema)
			},
		})
	}
	return pubs
}

func (c Collaborators) migrationPublishers() []domain.Publisher {
	if c.Logger == nil {
		return nil
	}
	return []domain.Publisher{{
		Name: "migration report",
		Run: func(_ context.Context, value any) error {
			res, ok := value.(*domain.MigrationResult)
			if !ok {
				return unexpected(value)
			}
			if res.Changes() > 0 {
				c.Logger.Info(fmt.Sprintf("migrated %s database: %d tables created, %d columns added",
					res.Dialect, len(res.TablesCreated), len(res.ColumnsAdded)))
			}
			return nil
		},
	}}
}

func (c Collaborators) contextPublishers() []domain.Publisher {
	var pubs []domain.Publisher
	if c.Types != nil {
		pubs = append(pubs, publisher("context type", c.Types.GenerateContextType))
	}
	if c.Reindexer != nil {
		pubs = append(pubs, domain.Publisher{
			Name: "reindex",
			Run: func(ctx context.Context, value any) error {
				hc, ok := value.(*domain.Context)
				if !ok {
					return unexpected(value)
				}
				return c.Reindexer.Reindex(ctx, hc)
			},
		})
	}
	return pubs
}

func publisher[T any](name string, fn func(T) error) domain.Publisher {
	return domain.Publisher{
		Name: name,
		Run: func(_ context.Context, value any) error {
			v, ok := value.(T)
			if !ok {
				return unexpected(value)
			}
			return fn(v)
		},
	}
}

func dep[T any](in domain.StepInput, kind domain.ArtifactKind) (T, error) {
	v, ok := domain.Dep[T](in, kind)
	if !ok {
		return v, zerr.With(domain.ErrDependencyAbsent, "dependency", kind.String())
	}
	return v, nil
}

func unexpected(value any) error {
	return zerr.With(domain.ErrPublishFailed, "value", fmt.Sprintf("%T", value))
}
