// Package gql builds the GraphQL API schema exposed for the entities.
package gql

import (
	"bytes"

	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// QueryTypeName is the root query type.
	QueryTypeName = "Query"
	// OrderDirectionTypeName is the enum of plural query orderings.
	OrderDirectionTypeName = "OrderDirection"
)

// Builder implements ports.GqlBuilder.
type Builder struct{}

var _ ports.GqlBuilder = (*Builder)(nil)

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildGqlSchema derives the API schema: one object per entity, the user enums,
// BigInt and Bytes scalars, and a singular and plural query field per entity.
func (b *Builder) BuildGqlSchema(schema *domain.Schema) (*domain.GqlSchemaDef, error) {
	doc := &ast.SchemaDocument{}
	out := &domain.GqlSchemaDef{}

	for _, name := range []string{domain.ScalarBigInt, domain.ScalarBytes} {
		doc.Definitions = append(doc.Definitions, &ast.Definition{Kind: ast.Scalar, Name: name})
	}
	doc.Definitions = append(doc.Definitions, &ast.Definition{
		Kind: ast.Enum,
		Name: OrderDirectionTypeName,
		EnumValues: ast.EnumValueList{
			{Name: "asc"},
			{Name: "desc"},
		},
	})

	for _, enum := range schema.Enums {
		def := &ast.Definition{Kind: ast.Enum, Name: enum.Name}
		for _, v := range enum.Values {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{Name: v})
		}
		doc.Definitions = append(doc.Definitions, def)
		out.Types = append(out.Types, domain.GqlType{Name: enum.Name, Kind: domain.GqlKindEnum, Values: enum.Values})
	}

	query := &ast.Definition{Kind: ast.Object, Name: QueryTypeName}
	for _, entity := range schema.Entities {
		def := &ast.Definition{Kind: ast.Object, Name: entity.Name}
		typ := domain.GqlType{Name: entity.Name, Kind: domain.GqlKindObject}

		for _, f := range entity.Fields {
			ref := fieldType(f)
			def.Fields = append(def.Fields, &ast.FieldDefinition{Name: f.Name, Type: ref})
			typ.Fields = append(typ.Fields, domain.GqlField{Name: f.Name, Type: ref.String(), GoType: goType(f, schema)})
		}
		doc.Definitions = append(doc.Definitions, def)
		out.Types = append(out.Types, typ)

		singular, plural := queryNames(entity.Name)
		id, _ := entity.IDField()
		query.Fields = append(query.Fields,
			&ast.FieldDefinition{
				Name: singular,
				Arguments: ast.ArgumentDefinitionList{
					{Name: "id", Type: ast.NonNullNamedType(id.Type, nil)},
				},
				Type: ast.NamedType(entity.Name, nil),
			},
			&ast.FieldDefinition{
				Name: plural,
				Arguments: ast.ArgumentDefinitionList{
					{Name: "skip", Type: ast.NamedType(domain.ScalarInt, nil)},
					{Name: "first", Type: ast.NamedType(domain.ScalarInt, nil)},
					{Name: "orderBy", Type: ast.NamedType(domain.ScalarString, nil)},
					{Name: "orderDirection", Type: ast.NamedType(OrderDirectionTypeName, nil)},
				},
				Type: ast.NonNullListType(ast.NonNullNamedType(entity.Name, nil), nil),
			},
		)
		out.Queries = append(out.Queries,
			domain.GqlField{Name: singular, Type: entity.Name, Entity: entity.Name},
			domain.GqlField{Name: plural, Type: "[" + entity.Name + "!]!", Entity: entity.Name},
		)
	}
	if len(query.Fields) > 0 {
		doc.Definitions = append(doc.Definitions, query)
	}

	sdl, err := render(doc)
	if err != nil {
		return nil, err
	}
	out.SDL = sdl
	return out, nil
}

// render validates the document and prints it in canonical order.
func render(doc *ast.SchemaDocument) (string, error) {
	var draft bytes.Buffer
	formatter.NewFormatter(&draft).FormatSchemaDocument(doc)

	loaded, err := gqlparser.LoadSchema(&ast.Source{Name: domain.SchemaFileName, Input: draft.String()})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrGqlBuildFailed.Error())
	}

	var out bytes.Buffer
	formatter.NewFormatter(&out, formatter.WithIndent("  ")).FormatSchema(loaded)
	return out.String(), nil
}

// queryNames returns the singular and plural root field names of an entity.
func queryNames(entity string) (string, string) {
	singular := inflect.CamelizeDownFirst(entity)
	plural := inflect.Pluralize(singular)
	if plural == singular {
		plural = singular + "List"
	}
	return singular, plural
}

func fieldType(f domain.Field) *ast.Type {
	if f.Kind == domain.FieldList || f.Kind == domain.FieldDerived {
		elem := &ast.Type{NamedType: f.Type, NonNull: f.ElemRequired}
		return &ast.Type{Elem: elem, NonNull: f.Required}
	}
	return &ast.Type{NamedType: f.Type, NonNull: f.Required}
}

// goType maps a field to the Go type used in generated entity code.
// Derived fields are not stored and map to no Go type.
func goType(f domain.Field, schema *domain.Schema) string {
	switch f.Kind {
	case domain.FieldDerived:
		return ""
	case domain.FieldList:
		return "[]" + scalarGoType(f.Type, f.ElemKind, true)
	case domain.FieldReference:
		target, _ := schema.Entity(f.Type)
		id, _ := target.IDField()
		return scalarGoType(id.Type, domain.FieldScalar, f.Required)
	default:
		return scalarGoType(f.Type, f.Kind, f.Required)
	}
}

func scalarGoType(name string, kind domain.FieldKind, required bool) string {
	var base string
	switch {
	case kind == domain.FieldEnum:
		base = name
	case name == domain.ScalarInt:
		base = "int64"
	case name == domain.ScalarFloat:
		base = "float64"
	case name == domain.ScalarBoolean:
		base = "bool"
	case name == domain.ScalarBigInt:
		return "*big.Int"
	case name == domain.ScalarBytes:
		return "[]byte"
	default:
		base = "string"
	}
	if !required {
		return "*" + base
	}
	return base
}
