package db

import (
	"context"
	"database/sql"
	"time"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Migrator implements ports.Migrator.
type Migrator struct {
	db  *DB
	now func() time.Time
}

var _ ports.Migrator = (*Migrator)(nil)

// NewMigrator creates a Migrator for db.
func NewMigrator(db *DB) *Migrator {
	return &Migrator{db: db, now: time.Now}
}

// Migrate creates missing tables and adds missing columns in one transaction.
// Nothing is dropped, so running it twice with the same schema changes nothing.
func (m *Migrator) Migrate(ctx context.Context, schema *domain.DbSchemaDef) (*domain.MigrationResult, error) {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMigrationFailed.Error())
	}

	result, err := m.apply(ctx, tx, schema)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMigrationFailed.Error())
	}
	return result, nil
}

func (m *Migrator) apply(ctx context.Context, tx *sql.Tx, schema *domain.DbSchemaDef) (*domain.MigrationResult, error) {
	d := m.db.dialect
	result := &domain.MigrationResult{Dialect: d.Name(), AppliedAt: m.now()}

	for _, table := range schema.Tables {
		existing, err := existingColumns(ctx, tx, d, table.Name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMigrationFailed.Error()), "table", table.Name)
		}

		if len(existing) == 0 {
			if _, err := tx.ExecContext(ctx, createTableSQL(d, table)); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrMigrationFailed.Error()), "table", table.Name)
			}
			result.TablesCreated = append(result.TablesCreated, table.Name)
			continue
		}

		for _, col := range table.Columns {
			if existing[col.Name] {
				continue
			}
			if _, err := tx.ExecContext(ctx, addColumnSQL(d, table.Name, col)); err != nil {
				return nil, zerr.With(
					zerr.With(zerr.Wrap(err, domain.ErrMigrationFailed.Error()), "table", table.Name),
					"column", col.Name,
				)
			}
			result.ColumnsAdded = append(result.ColumnsAdded, table.Name+"."+col.Name)
		}
	}

	return result, nil
}
