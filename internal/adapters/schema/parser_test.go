package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/schema"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/zerr"
)

const tokenSchema = `
enum Kind { MINT BURN TRANSFER }

type Account {
  id: Bytes!
  balance: BigInt!
  tags: [String!]
  transfers: [TransferEvent!]! @derivedFrom(field: "from")
}

type TransferEvent {
  id: ID!
  from: Account!
  to: Account
  kind: Kind!
  amount: Float
}
`

func TestParseSchema(t *testing.T) {
	s, err := schema.NewParser().ParseSchema([]byte(tokenSchema))
	require.NoError(t, err)

	assert.Equal(t, []string{"Account", "TransferEvent"}, s.EntityNames())

	kind, ok := s.Enum("Kind")
	require.True(t, ok)
	assert.Equal(t, []string{"MINT", "BURN", "TRANSFER"}, kind.Values)

	account, ok := s.Entity("Account")
	require.True(t, ok)

	id, ok := account.IDField()
	require.True(t, ok)
	assert.Equal(t, domain.ScalarBytes, id.Type)
	assert.True(t, id.Required)

	tags, _ := account.Field("tags")
	assert.Equal(t, domain.FieldList, tags.Kind)
	assert.Equal(t, domain.FieldScalar, tags.ElemKind)
	assert.False(t, tags.Required)
	assert.True(t, tags.ElemRequired)

	transfers, _ := account.Field("transfers")
	assert.Equal(t, domain.FieldDerived, transfers.Kind)
	assert.Equal(t, "TransferEvent", transfers.Type)
	assert.Equal(t, "from", transfers.DerivedFrom)

	event, _ := s.Entity("TransferEvent")
	from, _ := event.Field("from")
	assert.Equal(t, domain.FieldReference, from.Kind)
	assert.Equal(t, "Account", from.Type)
	k, _ := event.Field("kind")
	assert.Equal(t, domain.FieldEnum, k.Kind)
}

func TestParseSchema_DeclaredScalarsAreAccepted(t *testing.T) {
	s, err := schema.NewParser().ParseSchema([]byte(`
scalar BigInt
type Pool { id: ID! liquidity: BigInt }
`))
	require.NoError(t, err)
	assert.Len(t, s.Entities, 1)
}

func TestParseSchema_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantKey string
		wantVal any
	}{
		{
			name:    "syntax error",
			content: "type Account {",
			wantErr: domain.ErrSchemaParseFailed,
		},
		{
			name:    "interface",
			content: "interface Node { id: ID! }",
			wantErr: domain.ErrUnsupportedDefinition,
			wantKey: "type",
			wantVal: "Node",
		},
		{
			name:    "custom scalar",
			content: "scalar Address",
			wantErr: domain.ErrUnsupportedDefinition,
			wantKey: "type",
			wantVal: "Address",
		},
		{
			name:    "duplicate type",
			content: "type A { id: ID! }\ntype A { id: ID! }",
			wantErr: domain.ErrDuplicateType,
			wantKey: "type",
			wantVal: "A",
		},
		{
			name:    "missing id",
			content: "type Account { balance: BigInt }",
			wantErr: domain.ErrMissingIDField,
			wantKey: "entity",
			wantVal: "Account",
		},
		{
			name:    "nullable id",
			content: "type Account { id: ID }",
			wantErr: domain.ErrInvalidIDField,
		},
		{
			name:    "float id",
			content: "type Account { id: Float! }",
			wantErr: domain.ErrInvalidIDField,
			wantKey: "type",
			wantVal: "Float",
		},
		{
			name:    "unknown type",
			content: "type Account { id: ID! owner: Owner }",
			wantErr: domain.ErrUnknownFieldType,
			wantKey: "field",
			wantVal: "owner",
		},
		{
			name:    "nested list",
			content: "type Account { id: ID! grid: [[Int]] }",
			wantErr: domain.ErrNestedList,
		},
		{
			name:    "entity list without derivedFrom",
			content: "type A { id: ID! bs: [B] }\ntype B { id: ID! }",
			wantErr: domain.ErrInvalidDerivedField,
		},
		{
			name:    "derivedFrom on a missing back reference",
			content: "type A { id: ID! bs: [B] @derivedFrom(field: \"a\") }\ntype B { id: ID! }",
			wantErr: domain.ErrInvalidDerivedField,
			wantKey: "field",
			wantVal: "bs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.NewParser().ParseSchema([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())

			if tt.wantKey != "" {
				var zErr *zerr.Error
				require.ErrorAs(t, err, &zErr)
				assert.Equal(t, tt.wantVal, zErr.Metadata()[tt.wantKey])
			}
		})
	}
}
