package domain

import "time"

// ColumnType is a logical column type. Migrators map it to a dialect type.
type ColumnType string

// Logical column types.
const (
	ColumnText    ColumnType = "text"
	ColumnInteger ColumnType = "integer"
	ColumnReal    ColumnType = "real"
	ColumnBoolean ColumnType = "boolean"
	ColumnBigInt  ColumnType = "bigint"
	ColumnBytes   ColumnType = "bytes"
	// ColumnJSON stores lists.
	ColumnJSON ColumnType = "json"
)

// DbSchemaDef describes the relational layout of the entities.
type DbSchemaDef struct {
	Tables []Table
}

// Table stores one entity.
type Table struct {
	Name       string
	Entity     string
	Columns    []Column
	PrimaryKey string
}

// Column is a stored field.
type Column struct {
	Name    string
	Field   string
	Type    ColumnType
	NotNull bool
}

// Table returns the table storing the given entity.
func (s *DbSchemaDef) Table(entity string) (Table, bool) {
	for _, t := range s.Tables {
		if t.Entity == entity {
			return t, true
		}
	}
	return Table{}, false
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// MigrationResult describes what a migration applied.
type MigrationResult struct {
	Dialect       string
	TablesCreated []string
	// ColumnsAdded holds "table.column" entries.
	ColumnsAdded []string
	AppliedAt    time.Time
}

// Changes returns the number of applied structural changes.
func (r *MigrationResult) Changes() int {
	return len(r.TablesCreated) + len(r.ColumnsAdded)
}
