package ports

import (
	"context"

	"go.trai.ch/ponder/internal/core/domain"
)

//go:generate mockgen -source=derive.go -destination=mocks/mock_derive.go -package=mocks

// ConfigParser turns the configuration file into a Config.
type ConfigParser interface {
	ParseConfig(raw []byte) (*domain.Config, error)
}

// SchemaParser turns the schema file into an abstract Schema.
type SchemaParser interface {
	ParseSchema(raw []byte) (*domain.Schema, error)
}

// GqlBuilder builds the queryable GraphQL schema.
type GqlBuilder interface {
	BuildGqlSchema(schema *domain.Schema) (*domain.GqlSchemaDef, error)
}

// DbBuilder builds the relational schema description.
type DbBuilder interface {
	BuildDbSchema(schema *domain.Schema) (*domain.DbSchemaDef, error)
}

// Migrator applies a DbSchema to the live database.
// Applying the same DbSchema twice must not fail or duplicate structures.
type Migrator interface {
	Migrate(ctx context.Context, schema *domain.DbSchemaDef) (*domain.MigrationResult, error)
}

// ContextBuilder builds the context handed to indexing handlers.
type ContextBuilder interface {
	BuildHandlerContext(
		ctx context.Context,
		cfg *domain.Config,
		schema *domain.DbSchemaDef,
	) (*domain.Context, error)
}

// TypeGenerator writes generated sources. Every file is replaced wholesale.
type TypeGenerator interface {
	GenerateContractTypes(cfg *domain.Config) error
	GenerateHandlerTypes(cfg *domain.Config) error
	GenerateSchema(schema *domain.GqlSchemaDef) error
	GenerateEntityTypes(schema *domain.GqlSchemaDef) error
	GenerateContextType(hc *domain.Context) error
}

// SchemaServer serves the API over the current GqlSchema.
type SchemaServer interface {
	// Restart stops the running server, if any, and serves schema.
	Restart(ctx context.Context, schema *domain.GqlSchemaDef) error
}

// Reindexer reconciles already processed events with a rebuilt HandlerContext.
// A nil Reindexer leaves the hook unwired.
type Reindexer interface {
	Reindex(ctx context.Context, hc *domain.Context) error
}
