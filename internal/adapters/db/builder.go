// Package db lays entities out as tables and keeps a database migrated to that layout.
package db

import (
	"github.com/go-openapi/inflect"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.DbBuilder.
type Builder struct{}

var _ ports.DbBuilder = (*Builder)(nil)

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildDbSchema maps every entity to a table named after its plural snake case form.
// Derived fields are virtual and get no column.
func (b *Builder) BuildDbSchema(schema *domain.Schema) (*domain.DbSchemaDef, error) {
	out := &domain.DbSchemaDef{}
	names := make(map[string]string, len(schema.Entities))

	for _, entity := range schema.Entities {
		table := domain.Table{
			Name:       TableName(entity.Name),
			Entity:     entity.Name,
			PrimaryKey: "id",
		}
		if other, ok := names[table.Name]; ok {
			return nil, zerr.With(zerr.With(domain.ErrDbBuildFailed, "table", table.Name), "entity", other)
		}
		names[table.Name] = entity.Name

		for _, f := range entity.Fields {
			if f.Kind == domain.FieldDerived {
				continue
			}
			typ, err := columnType(f, schema)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "entity", entity.Name), "field", f.Name)
			}
			table.Columns = append(table.Columns, domain.Column{
				Name:    f.Name,
				Field:   f.Name,
				Type:    typ,
				NotNull: f.Required,
			})
		}
		out.Tables = append(out.Tables, table)
	}
	return out, nil
}

// TableName returns the table of an entity: "TransferEvent" is stored in "transfer_events".
func TableName(entity string) string {
	return inflect.Tableize(entity)
}

func columnType(f domain.Field, schema *domain.Schema) (domain.ColumnType, error) {
	switch f.Kind {
	case domain.FieldList:
		return domain.ColumnJSON, nil
	case domain.FieldEnum:
		return domain.ColumnText, nil
	case domain.FieldReference:
		target, ok := schema.Entity(f.Type)
		if !ok {
			return "", zerr.With(domain.ErrUnknownFieldType, "type", f.Type)
		}
		id, _ := target.IDField()
		return scalarColumn(id.Type), nil
	default:
		return scalarColumn(f.Type), nil
	}
}

func scalarColumn(name string) domain.ColumnType {
	switch name {
	case domain.ScalarInt:
		return domain.ColumnInteger
	case domain.ScalarFloat:
		return domain.ColumnReal
	case domain.ScalarBoolean:
		return domain.ColumnBoolean
	case domain.ScalarBigInt:
		return domain.ColumnBigInt
	case domain.ScalarBytes:
		return domain.ColumnBytes
	default:
		return domain.ColumnText
	}
}
