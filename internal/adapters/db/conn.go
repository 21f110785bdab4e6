package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the sqlite driver
)

const (
	connectRetries   = 5
	connectMaxWait   = 10 * time.Second
	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"
)

// DB is a lazily connected database handle shared by the migrator and the entity stores.
type DB struct {
	dsn     string
	dialect dialect

	mu sync.Mutex
	db *sql.DB
}

// Open prepares a handle for url. Postgres URLs use pgx; anything else is a sqlite
// file path, and an empty url selects the default file under root.
// No connection is made until first use.
func Open(url, root string) *DB {
	url = strings.TrimSpace(url)
	if strings.HasPrefix(url, postgresScheme) || strings.HasPrefix(url, postgresqlScheme) {
		return &DB{dsn: url, dialect: postgresDialect{}}
	}

	path := url
	if path == "" {
		path = filepath.Join(root, domain.DefaultDatabasePath())
	}
	return &DB{dsn: path, dialect: sqliteDialect{}}
}

// Dialect returns the name of the database dialect.
func (d *DB) Dialect() string {
	return d.dialect.Name()
}

// Conn returns the connection, connecting with exponential backoff on first use.
func (d *DB) Conn(ctx context.Context) (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	if d.dialect.Name() == DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(d.dsn), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseConnectFailed.Error()), "dialect", d.Dialect())
		}
	}

	conn, err := sql.Open(d.dialect.DriverName(), d.dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseConnectFailed.Error()), "dialect", d.Dialect())
	}
	if d.dialect.Name() == DialectSQLite {
		// One writer at a time.
		conn.SetMaxOpenConns(1)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = connectMaxWait
	ping := func() error { return conn.PingContext(ctx) }
	if err := backoff.Retry(ping, backoff.WithContext(backoff.WithMaxRetries(b, connectRetries), ctx)); err != nil {
		_ = conn.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseConnectFailed.Error()), "dialect", d.Dialect())
	}

	d.db = conn
	return conn, nil
}

// Close closes the connection if one was made.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}
