package db_test

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/db"
	"go.trai.ch/ponder/internal/adapters/schema"
	"go.trai.ch/ponder/internal/core/domain"
)

const tokenSchema = `
enum Kind { MINT BURN }

type Account {
  id: String!
  balance: BigInt!
  active: Boolean
  tags: [String!]
  transfers: [TransferEvent!]! @derivedFrom(field: "from")
}

type TransferEvent {
  id: ID!
  from: Account!
  kind: Kind!
  amount: Float
}
`

func buildSchema(t *testing.T, src string) *domain.DbSchemaDef {
	t.Helper()
	parsed, err := schema.NewParser().ParseSchema([]byte(src))
	require.NoError(t, err)
	out, err := db.NewBuilder().BuildDbSchema(parsed)
	require.NoError(t, err)
	return out
}

func openTemp(t *testing.T) *db.DB {
	t.Helper()
	handle := db.Open("", t.TempDir())
	t.Cleanup(func() { _ = handle.Close() })
	return handle
}

func TestBuildDbSchema(t *testing.T) {
	s := buildSchema(t, tokenSchema)
	require.Len(t, s.Tables, 2)

	accounts, ok := s.Table("Account")
	require.True(t, ok)
	assert.Equal(t, "accounts", accounts.Name)
	assert.Equal(t, "id", accounts.PrimaryKey)
	require.Len(t, accounts.Columns, 4, "derived fields are not stored")

	balance, _ := accounts.Column("balance")
	assert.Equal(t, domain.ColumnBigInt, balance.Type)
	assert.True(t, balance.NotNull)
	tags, _ := accounts.Column("tags")
	assert.Equal(t, domain.ColumnJSON, tags.Type)

	events, ok := s.Table("TransferEvent")
	require.True(t, ok)
	assert.Equal(t, "transfer_events", events.Name)
	from, _ := events.Column("from")
	assert.Equal(t, domain.ColumnText, from.Type, "references take the target id type")
	kind, _ := events.Column("kind")
	assert.Equal(t, domain.ColumnText, kind.Type)
}

func TestOpen_Dialect(t *testing.T) {
	assert.Equal(t, db.DialectPostgres, db.Open("postgres://localhost/ponder", ".").Dialect())
	assert.Equal(t, db.DialectPostgres, db.Open("postgresql://localhost/ponder", ".").Dialect())
	assert.Equal(t, db.DialectSQLite, db.Open("", ".").Dialect())
	assert.Equal(t, db.DialectSQLite, db.Open(filepath.Join(t.TempDir(), "x.db"), ".").Dialect())
}

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := db.NewMigrator(openTemp(t))
	s := buildSchema(t, tokenSchema)

	first, err := m.Migrate(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, db.DialectSQLite, first.Dialect)
	assert.ElementsMatch(t, []string{"accounts", "transfer_events"}, first.TablesCreated)

	second, err := m.Migrate(ctx, s)
	require.NoError(t, err)
	assert.Zero(t, second.Changes())
}

func TestMigrate_AddsMissingColumns(t *testing.T) {
	ctx := context.Background()
	m := db.NewMigrator(openTemp(t))

	_, err := m.Migrate(ctx, buildSchema(t, `type Pool { id: ID! }`))
	require.NoError(t, err)

	res, err := m.Migrate(ctx, buildSchema(t, `type Pool { id: ID! fee: Int! token: String }`))
	require.NoError(t, err)
	assert.Empty(t, res.TablesCreated)
	assert.Equal(t, []string{"pools.fee", "pools.token"}, res.ColumnsAdded)
}

func TestHandlerContext_EntityStore(t *testing.T) {
	ctx := context.Background()
	handle := openTemp(t)
	s := buildSchema(t, tokenSchema)

	_, err := db.NewMigrator(handle).Migrate(ctx, s)
	require.NoError(t, err)

	cfg := &domain.Config{Sources: []domain.Source{{
		Contract: "Token",
		Network:  "mainnet",
		ChainID:  1,
		Address:  "0x6B175474E89094C44Da98b954EedeAC495271d0F",
	}}}
	hc, err := db.NewContextBuilder(handle).BuildHandlerContext(ctx, cfg, s)
	require.NoError(t, err)

	assert.Equal(t, []string{"Account", "TransferEvent"}, hc.Entities())
	require.Len(t, hc.Contracts, 1)
	assert.Equal(t, "Token", hc.Contracts[0].Name)

	accounts, ok := hc.Entity("Account")
	require.True(t, ok)

	balance, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.NoError(t, accounts.Upsert(ctx, domain.Record{
		"id":      "alice",
		"balance": balance,
		"active":  true,
		"tags":    []string{"whale"},
	}))
	require.NoError(t, accounts.Upsert(ctx, domain.Record{"id": "bob", "balance": "1"}))

	n, err := accounts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	alice, err := accounts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice["id"])
	assert.Equal(t, 0, balance.Cmp(alice["balance"].(*big.Int)))
	assert.Equal(t, true, alice["active"])
	assert.Equal(t, []any{"whale"}, alice["tags"])

	require.NoError(t, accounts.Upsert(ctx, domain.Record{"id": "alice", "balance": "5"}))
	alice, err = accounts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "5", alice["balance"].(*big.Int).String())
	assert.Nil(t, alice["tags"])

	require.NoError(t, accounts.Delete(ctx, "bob"))
	_, err = accounts.Get(ctx, "bob")
	assert.ErrorContains(t, err, domain.ErrEntityNotFound.Error())
}

func TestBuildHandlerContext_RequiresMigratedTables(t *testing.T) {
	ctx := context.Background()
	handle := openTemp(t)

	_, err := db.NewContextBuilder(handle).BuildHandlerContext(ctx, &domain.Config{}, buildSchema(t, tokenSchema))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTableNotFound.Error())
}
