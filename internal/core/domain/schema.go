package domain

// Built-in scalar names accepted in the schema file.
const (
	ScalarID      = "ID"
	ScalarString  = "String"
	ScalarInt     = "Int"
	ScalarFloat   = "Float"
	ScalarBoolean = "Boolean"
	ScalarBigInt  = "BigInt"
	ScalarBytes   = "Bytes"
)

// IsScalar reports whether name is a supported scalar.
func IsScalar(name string) bool {
	switch name {
	case ScalarID, ScalarString, ScalarInt, ScalarFloat, ScalarBoolean, ScalarBigInt, ScalarBytes:
		return true
	}
	return false
}

// FieldKind classifies an entity field.
type FieldKind uint8

const (
	// FieldScalar holds a scalar value.
	FieldScalar FieldKind = iota
	// FieldEnum holds an enum value.
	FieldEnum
	// FieldReference holds the id of another entity.
	FieldReference
	// FieldList holds a list of scalars or enums.
	FieldList
	// FieldDerived is a virtual list of entities pointing back at this one. It is not stored.
	FieldDerived
)

func (k FieldKind) String() string {
	switch k {
	case FieldScalar:
		return "scalar"
	case FieldEnum:
		return "enum"
	case FieldReference:
		return "reference"
	case FieldList:
		return "list"
	case FieldDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// Schema is the abstract schema parsed from the schema file.
type Schema struct {
	Entities []Entity
	Enums    []Enum
}

// Entity is a stored record type.
type Entity struct {
	Name   string
	Fields []Field
}

// Enum is a named set of values.
type Enum struct {
	Name   string
	Values []string
}

// Field is an entity field.
type Field struct {
	Name string
	Kind FieldKind
	// Type is the scalar, enum or entity name. For lists it is the element type.
	Type string
	// Required is true for non-null fields. For lists it applies to the list itself.
	Required bool
	// ElemRequired is true when list elements are non-null.
	ElemRequired bool
	// ElemKind is the kind of list elements (scalar or enum).
	ElemKind FieldKind
	// DerivedFrom names the reference field on Type that points back here.
	DerivedFrom string
}

// Entity returns the entity with the given name.
func (s *Schema) Entity(name string) (Entity, bool) {
	for _, e := range s.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Enum returns the enum with the given name.
func (s *Schema) Enum(name string) (Enum, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}

// EntityNames returns entity names in declaration order.
func (s *Schema) EntityNames() []string {
	names := make([]string, len(s.Entities))
	for i, e := range s.Entities {
		names[i] = e.Name
	}
	return names
}

// Field returns the field with the given name.
func (e *Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IDField returns the id field of the entity.
func (e *Entity) IDField() (Field, bool) {
	return e.Field("id")
}
