package fs

import (
	"os"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeDetector = (*Detector)(nil)

const cacheSize = 64

// Detector implements ports.ChangeDetector over file content fingerprints.
// File metadata is never consulted.
type Detector struct {
	mu     sync.Mutex
	root   string
	store  ports.FingerprintStore
	logger ports.Logger
	cache  *lru.Cache[string, domain.WatchedInput]
	now    func() time.Time
}

// NewDetector creates a Detector persisting fingerprints under root.
// Records missing from memory are hydrated from store.
func NewDetector(root string, store ports.FingerprintStore, logger ports.Logger) (*Detector, error) {
	cache, err := lru.New[string, domain.WatchedInput](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Detector{
		root:   root,
		store:  store,
		logger: logger,
		cache:  cache,
		now:    time.Now,
	}, nil
}

// Detect reads path and reports whether its fingerprint changed.
func (d *Detector) Detect(path string) ([]byte, bool) {
	//nolint:gosec // Path is one of the configured inputs
	content, err := os.ReadFile(path)
	if err != nil {
		d.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrInputRead.Error()), "path", path))
		return nil, false
	}
	fingerprint := Fingerprint(content)

	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.lookup(path)
	if ok && rec.Fingerprint == fingerprint {
		return content, false
	}
	d.record(path, fingerprint, rec)
	return content, true
}

// Read returns the content of path and records its fingerprint.
func (d *Detector) Read(path string) ([]byte, error) {
	//nolint:gosec // Path is one of the configured inputs
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	rec, _ := d.lookup(path)
	d.record(path, Fingerprint(content), rec)
	return content, nil
}

// MarkParsed records the last successful parse of path.
func (d *Detector) MarkParsed(path string, at time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.lookup(path)
	if !ok {
		return
	}
	rec.LastParsedAt = at
	d.save(rec)
}

// Forget drops the recorded fingerprint of path.
func (d *Detector) Forget(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cache.Remove(path)
	if err := d.store.Delete(d.root, path); err != nil {
		d.logger.Error(err)
	}
}

// Fingerprint returns the recorded fingerprint of path, if any.
func (d *Detector) Fingerprint(path string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.lookup(path)
	return rec.Fingerprint, ok
}

func (d *Detector) lookup(path string) (domain.WatchedInput, bool) {
	if rec, ok := d.cache.Get(path); ok {
		return rec, true
	}

	rec, err := d.store.Get(d.root, path)
	if err != nil {
		d.logger.Warn("ignoring fingerprint record of " + path + ": " + err.Error())
		return domain.WatchedInput{}, false
	}
	if rec == nil {
		return domain.WatchedInput{}, false
	}
	d.cache.Add(path, *rec)
	return *rec, true
}

func (d *Detector) record(path, fingerprint string, prev domain.WatchedInput) {
	prev.Path = path
	prev.Fingerprint = fingerprint
	prev.ObservedAt = d.now()
	d.save(prev)
}

func (d *Detector) save(rec domain.WatchedInput) {
	d.cache.Add(rec.Path, rec)
	if err := d.store.Put(d.root, rec); err != nil {
		d.logger.Error(err)
	}
}
