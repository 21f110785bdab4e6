// Package cas implements the on-disk fingerprint store of watched inputs.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore using a file-per-input strategy.
type Store struct{}

// NewStore creates a new FingerprintStore.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the record for a given input path.
func (s *Store) Get(root, path string) (*domain.WatchedInput, error) {
	filename := s.getFilename(root, path)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var input domain.WatchedInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}

	return &input, nil
}

// Put stores the record.
func (s *Store) Put(root string, input domain.WatchedInput) error {
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, input.Path)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Delete removes the record for path.
func (s *Store) Delete(root, path string) error {
	if err := os.Remove(s.getFilename(root, path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreDeleteFailed.Error()), "path", path)
	}
	return nil
}

func (s *Store) getFilename(root, path string) string {
	hash := sha256.Sum256([]byte(path))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hexHash+".json")
}
