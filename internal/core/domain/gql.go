package domain

// GqlSchemaDef is the queryable GraphQL schema built from a Schema.
type GqlSchemaDef struct {
	// SDL is the canonical, formatted schema document.
	SDL   string
	Types []GqlType
	// Queries lists the root query fields in declaration order.
	Queries []GqlField
}

// GqlType is an object or enum type exposed by the API.
type GqlType struct {
	Name   string
	Kind   string
	Fields []GqlField
	Values []string
}

// GqlField is a field of a GraphQL type.
type GqlField struct {
	Name string
	// Type is the rendered GraphQL type reference, e.g. "[Transfer!]!".
	Type string
	// GoType is the Go type used by generated entity code.
	GoType string
	// Entity is set on query fields and names the entity they resolve.
	Entity string
}

// GqlType kinds.
const (
	GqlKindObject = "OBJECT"
	GqlKindEnum   = "ENUM"
)

// Type returns the type with the given name.
func (s *GqlSchemaDef) Type(name string) (GqlType, bool) {
	for _, t := range s.Types {
		if t.Name == name {
			return t, true
		}
	}
	return GqlType{}, false
}

// Objects returns the object types.
func (s *GqlSchemaDef) Objects() []GqlType {
	var out []GqlType
	for _, t := range s.Types {
		if t.Kind == GqlKindObject {
			out = append(out, t)
		}
	}
	return out
}
