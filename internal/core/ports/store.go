package ports

import "go.trai.ch/ponder/internal/core/domain"

// FingerprintStore persists the recorded state of watched inputs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the record for a given input path.
	// Returns nil, nil if not found.
	Get(root, path string) (*domain.WatchedInput, error)

	// Put stores the record.
	Put(root string, input domain.WatchedInput) error

	// Delete removes the record for path. A missing record is not an error.
	Delete(root, path string) error
}
