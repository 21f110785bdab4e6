package domain

import (
	"path/filepath"
	"time"
)

const (
	// PonderDirName is the name of the internal workspace directory.
	PonderDirName = ".ponder"

	// StoreDirName is the name of the fingerprint store directory.
	StoreDirName = "store"

	// GeneratedDirName is the default name of the generated sources directory.
	GeneratedDirName = "generated"

	// DatabaseFileName is the name of the default sqlite database file.
	DatabaseFileName = "cache.db"

	// SocketFileName is the name of the status socket of a running dev session.
	SocketFileName = "ponder.sock"

	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "ponder.yaml"

	// SchemaFileName is the default name of the schema file.
	SchemaFileName = "schema.graphql"

	// DefaultServerPort is the default port of the schema server.
	DefaultServerPort = 42069

	// DefaultDebounceWindow is the default quiet period before a watched input settles.
	DefaultDebounceWindow = 300 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm is the permission of the status socket.
	SocketPerm = 0o600
)

// DefaultPonderPath returns the default root directory for ponder metadata.
func DefaultPonderPath() string {
	return PonderDirName
}

// DefaultStorePath returns the default path for the fingerprint store.
// It joins .ponder and store.
func DefaultStorePath() string {
	return filepath.Join(PonderDirName, StoreDirName)
}

// DefaultGeneratedPath returns the default directory for generated sources.
func DefaultGeneratedPath() string {
	return GeneratedDirName
}

// DefaultDatabasePath returns the default sqlite database path.
// It joins .ponder and cache.db.
func DefaultDatabasePath() string {
	return filepath.Join(PonderDirName, DatabaseFileName)
}

// DefaultSocketPath returns the default status socket path.
// It joins .ponder and ponder.sock.
func DefaultSocketPath() string {
	return filepath.Join(PonderDirName, SocketFileName)
}
