package db

import (
	"context"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// ContextBuilder implements ports.ContextBuilder.
type ContextBuilder struct {
	db *DB
}

var _ ports.ContextBuilder = (*ContextBuilder)(nil)

// NewContextBuilder creates a ContextBuilder whose entity stores use db.
func NewContextBuilder(db *DB) *ContextBuilder {
	return &ContextBuilder{db: db}
}

// BuildHandlerContext binds one entity store per table and one contract binding per source.
func (b *ContextBuilder) BuildHandlerContext(
	ctx context.Context,
	cfg *domain.Config,
	schema *domain.DbSchemaDef,
) (*domain.Context, error) {
	conn, err := b.db.Conn(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrContextBuildFailed.Error())
	}

	entities := make(map[string]domain.EntityStore, len(schema.Tables))
	for _, table := range schema.Tables {
		cols, err := existingColumns(ctx, conn, b.db.dialect, table.Name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrContextBuildFailed.Error()), "table", table.Name)
		}
		if len(cols) == 0 {
			return nil, zerr.With(zerr.With(domain.ErrTableNotFound, "entity", table.Entity), "table", table.Name)
		}
		entities[table.Entity] = NewEntityStore(b.db, table)
	}

	contracts := make([]domain.ContractBinding, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		address := src.Address
		if src.Factory != nil {
			address = src.Factory.Address
		}
		contracts = append(contracts, domain.ContractBinding{
			Name:    src.Contract,
			Network: src.Network,
			ChainID: src.ChainID,
			Address: address,
			Events:  src.Events,
		})
	}

	return domain.NewHandlerContext(entities, contracts), nil
}
