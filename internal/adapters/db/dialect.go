package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.trai.ch/ponder/internal/core/domain"
)

// Dialect names.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// dialect holds what differs between the supported databases.
type dialect interface {
	Name() string
	DriverName() string
	ColumnType(t domain.ColumnType) string
	Placeholder(n int) string
	ColumnsQuery() string
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return DialectSQLite }
func (sqliteDialect) DriverName() string { return "sqlite" }

func (sqliteDialect) ColumnType(t domain.ColumnType) string {
	switch t {
	case domain.ColumnInteger, domain.ColumnBoolean:
		return "INTEGER"
	case domain.ColumnReal:
		return "REAL"
	case domain.ColumnBytes:
		return "BLOB"
	default:
		return "TEXT"
	}
}

func (sqliteDialect) Placeholder(int) string { return "?" }

func (sqliteDialect) ColumnsQuery() string {
	return "SELECT name FROM pragma_table_info(?)"
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return DialectPostgres }
func (postgresDialect) DriverName() string { return "pgx" }

func (postgresDialect) ColumnType(t domain.ColumnType) string {
	switch t {
	case domain.ColumnInteger:
		return "INTEGER"
	case domain.ColumnReal:
		return "DOUBLE PRECISION"
	case domain.ColumnBoolean:
		return "BOOLEAN"
	case domain.ColumnBigInt:
		return "NUMERIC(78, 0)"
	case domain.ColumnBytes:
		return "BYTEA"
	case domain.ColumnJSON:
		return "JSONB"
	default:
		return "TEXT"
	}
}

func (postgresDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (postgresDialect) ColumnsQuery() string {
	return "SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1"
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// existingColumns returns the column names of table, empty when the table does not exist.
func existingColumns(ctx context.Context, q querier, d dialect, table string) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx, d.ColumnsQuery(), table)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

func createTableSQL(d dialect, t domain.Table) string {
	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		def := quote(c.Name) + " " + d.ColumnType(c.Type)
		if c.Name == t.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if c.NotNull {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(t.Name), strings.Join(defs, ", "))
}

// addColumnSQL adds a nullable column. Existing rows have no value for it.
func addColumnSQL(d dialect, table string, c domain.Column) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", quote(table), quote(c.Name), d.ColumnType(c.Type))
}
