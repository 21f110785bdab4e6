package ports

import "context"

//go:generate mockgen -source=status.go -destination=mocks/mock_status.go -package=mocks

// ArtifactStatus is one row reported by a running dev session.
type ArtifactStatus struct {
	Artifact string
	Serving  bool
}

// StatusClient queries the status socket of a running dev session.
type StatusClient interface {
	// Artifacts returns one row per artifact in derivation order.
	Artifacts(ctx context.Context) ([]ArtifactStatus, error)

	// Close releases client resources.
	Close() error
}
