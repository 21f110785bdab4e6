package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/zerr"
)

// EntityStore implements domain.EntityStore over one migrated table.
type EntityStore struct {
	db    *DB
	table domain.Table
}

var _ domain.EntityStore = (*EntityStore)(nil)

// NewEntityStore creates a store for table.
func NewEntityStore(db *DB, table domain.Table) *EntityStore {
	return &EntityStore{db: db, table: table}
}

// Get returns the row with the given id, or ErrEntityNotFound.
func (s *EntityStore) Get(ctx context.Context, id any) (domain.Record, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(s.table.Columns))
	for i, c := range s.table.Columns {
		names[i] = quote(c.Name)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		strings.Join(names, ", "), quote(s.table.Name), quote(s.table.PrimaryKey), s.db.dialect.Placeholder(1))

	dest := make([]any, len(s.table.Columns))
	for i := range dest {
		dest[i] = new(any)
	}
	if err := conn.QueryRowContext(ctx, query, encodeID(id)).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, zerr.With(zerr.With(domain.ErrEntityNotFound, "entity", s.table.Entity), "id", id)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read entity"), "entity", s.table.Entity)
	}

	rec := make(domain.Record, len(s.table.Columns))
	for i, c := range s.table.Columns {
		v, err := decode(c, *(dest[i].(*any)))
		if err != nil {
			return nil, zerr.With(zerr.With(err, "entity", s.table.Entity), "column", c.Name)
		}
		rec[c.Field] = v
	}
	return rec, nil
}

// Upsert inserts rec or replaces the row with the same id.
// Fields missing from rec are stored as NULL.
func (s *EntityStore) Upsert(ctx context.Context, rec domain.Record) error {
	if _, ok := rec[s.table.PrimaryKey]; !ok {
		return zerr.With(zerr.New("record has no id"), "entity", s.table.Entity)
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}

	cols := make([]string, len(s.table.Columns))
	marks := make([]string, len(s.table.Columns))
	updates := make([]string, 0, len(s.table.Columns))
	args := make([]any, len(s.table.Columns))
	for i, c := range s.table.Columns {
		cols[i] = quote(c.Name)
		marks[i] = s.db.dialect.Placeholder(i + 1)
		if c.Name != s.table.PrimaryKey {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", quote(c.Name), quote(c.Name)))
		}
		v, err := encode(c, rec[c.Field])
		if err != nil {
			return zerr.With(zerr.With(err, "entity", s.table.Entity), "column", c.Name)
		}
		args[i] = v
	}

	conflict := "DO NOTHING"
	if len(updates) > 0 {
		conflict = "DO UPDATE SET " + strings.Join(updates, ", ")
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) %s",
		quote(s.table.Name), strings.Join(cols, ", "), strings.Join(marks, ", "), quote(s.table.PrimaryKey), conflict)

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write entity"), "entity", s.table.Entity)
	}
	return nil
}

// Delete removes the row with the given id. Deleting a missing row is not an error.
func (s *EntityStore) Delete(ctx context.Context, id any) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = %s",
		quote(s.table.Name), quote(s.table.PrimaryKey), s.db.dialect.Placeholder(1))
	if _, err := conn.ExecContext(ctx, query, encodeID(id)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to delete entity"), "entity", s.table.Entity)
	}
	return nil
}

// Count returns the number of rows.
func (s *EntityStore) Count(ctx context.Context) (int, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return 0, err
	}

	var n int
	query := "SELECT COUNT(*) FROM " + quote(s.table.Name)
	if err := conn.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to count entities"), "entity", s.table.Entity)
	}
	return n, nil
}

func encodeID(id any) any {
	if b, ok := id.(*big.Int); ok {
		return b.String()
	}
	return id
}

func encode(c domain.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch c.Type {
	case domain.ColumnJSON:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	case domain.ColumnBigInt:
		switch n := v.(type) {
		case *big.Int:
			return n.String(), nil
		case string:
			if _, ok := new(big.Int).SetString(n, 10); !ok {
				return nil, zerr.With(zerr.New("invalid BigInt value"), "value", n)
			}
			return n, nil
		default:
			return fmt.Sprint(n), nil
		}
	default:
		return v, nil
	}
}

func decode(c domain.Column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch c.Type {
	case domain.ColumnJSON:
		var out []any
		if err := json.Unmarshal(asBytes(v), &out); err != nil {
			return nil, err
		}
		return out, nil
	case domain.ColumnBigInt:
		n, ok := new(big.Int).SetString(string(asBytes(v)), 10)
		if !ok {
			return nil, zerr.With(zerr.New("invalid BigInt value"), "value", v)
		}
		return n, nil
	case domain.ColumnBoolean:
		switch b := v.(type) {
		case int64:
			return b != 0, nil
		default:
			return b, nil
		}
	case domain.ColumnText:
		return string(asBytes(v)), nil
	default:
		return v, nil
	}
}

func asBytes(v any) []byte {
	switch t := v.(type) {
	case []byte:
		return t
	case string:
		return []byte(t)
	default:
		return []byte(fmt.Sprint(t))
	}
}
