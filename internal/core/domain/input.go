package domain

import "time"

// InputKind identifies one of the user-authored files that drive regeneration.
type InputKind uint8

const (
	// InputConfig is the configuration file.
	InputConfig InputKind = iota
	// InputSchema is the schema file.
	InputSchema
)

// InputKinds returns every watched input in bootstrap order.
func InputKinds() []InputKind {
	return []InputKind{InputConfig, InputSchema}
}

func (k InputKind) String() string {
	switch k {
	case InputConfig:
		return "config"
	case InputSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// WatchedInput is the recorded state of a watched file, keyed by path.
type WatchedInput struct {
	Path         string    `json:"path"`
	Fingerprint  string    `json:"fingerprint"`
	ObservedAt   time.Time `json:"observed_at"`
	LastParsedAt time.Time `json:"last_parsed_at,omitzero"`
}
