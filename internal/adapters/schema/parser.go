// Package schema parses the GraphQL schema file into entities and enums.
package schema

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

// DerivedFromDirective marks a virtual list field resolved from a reference on another entity.
const DerivedFromDirective = "derivedFrom"

// Parser implements ports.SchemaParser.
type Parser struct{}

var _ ports.SchemaParser = (*Parser)(nil)

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseSchema parses raw schema content.
func (p *Parser) ParseSchema(raw []byte) (*domain.Schema, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: domain.SchemaFileName, Input: string(raw)})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSchemaParseFailed.Error())
	}

	if len(doc.Extensions) > 0 {
		return nil, zerr.With(domain.ErrUnsupportedDefinition, "type", doc.Extensions[0].Name)
	}
	if len(doc.Schema) > 0 || len(doc.Directives) > 0 {
		return nil, zerr.With(domain.ErrUnsupportedDefinition, "type", "schema")
	}

	kinds := make(map[string]ast.DefinitionKind, len(doc.Definitions))
	for _, def := range doc.Definitions {
		if _, ok := kinds[def.Name]; ok {
			return nil, zerr.With(domain.ErrDuplicateType, "type", def.Name)
		}
		switch def.Kind {
		case ast.Object, ast.Enum:
		case ast.Scalar:
			if !domain.IsScalar(def.Name) {
				return nil, zerr.With(domain.ErrUnsupportedDefinition, "type", def.Name)
			}
		default:
			return nil, zerr.With(domain.ErrUnsupportedDefinition, "type", def.Name)
		}
		kinds[def.Name] = def.Kind
	}

	schema := &domain.Schema{}
	for _, def := range doc.Definitions {
		switch def.Kind {
		case ast.Enum:
			enum := domain.Enum{Name: def.Name}
			for _, v := range def.EnumValues {
				enum.Values = append(enum.Values, v.Name)
			}
			schema.Enums = append(schema.Enums, enum)
		case ast.Object:
			entity, err := buildEntity(def, kinds)
			if err != nil {
				return nil, zerr.With(err, "entity", def.Name)
			}
			schema.Entities = append(schema.Entities, entity)
		}
	}

	if err := validateDerived(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func buildEntity(def *ast.Definition, kinds map[string]ast.DefinitionKind) (domain.Entity, error) {
	entity := domain.Entity{Name: def.Name}

	for _, fd := range def.Fields {
		field, err := buildField(fd, kinds)
		if err != nil {
			return domain.Entity{}, zerr.With(err, "field", fd.Name)
		}
		entity.Fields = append(entity.Fields, field)
	}

	id, ok := entity.IDField()
	if !ok {
		return domain.Entity{}, domain.ErrMissingIDField
	}
	if !validID(id) {
		return domain.Entity{}, zerr.With(domain.ErrInvalidIDField, "type", id.Type)
	}
	return entity, nil
}

func buildField(fd *ast.FieldDefinition, kinds map[string]ast.DefinitionKind) (domain.Field, error) {
	typ := fd.Type
	field := domain.Field{Name: fd.Name, Type: typ.Name(), Required: typ.NonNull}

	if typ.Elem == nil {
		kind, err := classify(typ.NamedType, kinds)
		if err != nil {
			return domain.Field{}, err
		}
		if fd.Directives.ForName(DerivedFromDirective) != nil {
			return domain.Field{}, domain.ErrInvalidDerivedField
		}
		field.Kind = kind
		return field, nil
	}

	if typ.Elem.Elem != nil {
		return domain.Field{}, domain.ErrNestedList
	}
	field.ElemRequired = typ.Elem.NonNull

	kind, err := classify(typ.Elem.NamedType, kinds)
	if err != nil {
		return domain.Field{}, err
	}

	directive := fd.Directives.ForName(DerivedFromDirective)
	switch {
	case kind == domain.FieldReference && directive != nil:
		arg := directive.Arguments.ForName("field")
		if arg == nil || arg.Value == nil || arg.Value.Raw == "" {
			return domain.Field{}, domain.ErrInvalidDerivedField
		}
		field.Kind = domain.FieldDerived
		field.DerivedFrom = arg.Value.Raw
	case kind == domain.FieldReference, directive != nil:
		return domain.Field{}, domain.ErrInvalidDerivedField
	default:
		field.Kind = domain.FieldList
		field.ElemKind = kind
	}
	return field, nil
}

func classify(name string, kinds map[string]ast.DefinitionKind) (domain.FieldKind, error) {
	if domain.IsScalar(name) {
		return domain.FieldScalar, nil
	}
	switch kinds[name] {
	case ast.Enum:
		return domain.FieldEnum, nil
	case ast.Object:
		return domain.FieldReference, nil
	default:
		return 0, zerr.With(domain.ErrUnknownFieldType, "type", name)
	}
}

func validID(f domain.Field) bool {
	if f.Kind != domain.FieldScalar || !f.Required {
		return false
	}
	switch f.Type {
	case domain.ScalarID, domain.ScalarString, domain.ScalarInt, domain.ScalarBigInt, domain.ScalarBytes:
		return true
	}
	return false
}

// validateDerived checks that every derived field names a reference back to its entity.
func validateDerived(schema *domain.Schema) error {
	for _, entity := range schema.Entities {
		for _, f := range entity.Fields {
			if f.Kind != domain.FieldDerived {
				continue
			}
			target, _ := schema.Entity(f.Type)
			back, ok := target.Field(f.DerivedFrom)
			if !ok || back.Kind != domain.FieldReference || back.Type != entity.Name {
				return zerr.With(zerr.With(domain.ErrInvalidDerivedField, "entity", entity.Name), "field", f.Name)
			}
		}
	}
	return nil
}
