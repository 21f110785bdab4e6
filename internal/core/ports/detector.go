package ports

import "time"

// ChangeDetector decides whether a watched input changed by content.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type ChangeDetector interface {
	// Detect reads path and reports whether its content differs from the last
	// recorded fingerprint. A changed fingerprint is recorded before returning.
	// An unreadable file is logged and reported as unchanged.
	Detect(path string) (content []byte, changed bool)

	// Read returns the current content of path and records its fingerprint
	// whether or not it changed.
	Read(path string) ([]byte, error)

	// MarkParsed records the last successful parse of path.
	MarkParsed(path string, at time.Time)

	// Forget drops the recorded fingerprint of path, in memory and on disk,
	// so the next Detect reports it as changed.
	Forget(path string)
}
