package domain

import "time"

// ArtifactKind identifies a derived artifact.
type ArtifactKind uint8

const (
	// ParsedConfig is the structured configuration.
	ParsedConfig ArtifactKind = iota
	// ParsedSchema is the abstract schema.
	ParsedSchema
	// GqlSchema is the queryable GraphQL schema.
	GqlSchema
	// DbSchema is the relational schema description.
	DbSchema
	// MigratedDb is the applied database state.
	MigratedDb
	// HandlerContext is the context handed to indexing handlers.
	HandlerContext
)

var artifactNames = [...]string{
	ParsedConfig:   "ParsedConfig",
	ParsedSchema:   "ParsedSchema",
	GqlSchema:      "GqlSchema",
	DbSchema:       "DbSchema",
	MigratedDb:     "MigratedDb",
	HandlerContext: "HandlerContext",
}

// ArtifactKinds returns every artifact kind in declaration order.
func ArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ParsedConfig, ParsedSchema, GqlSchema, DbSchema, MigratedDb, HandlerContext}
}

func (k ArtifactKind) String() string {
	if int(k) < len(artifactNames) {
		return artifactNames[k]
	}
	return "unknown"
}

// ParseArtifactKind resolves the name produced by String.
func ParseArtifactKind(name string) (ArtifactKind, bool) {
	for i, n := range artifactNames {
		if n == name {
			return ArtifactKind(i), true
		}
	}
	return 0, false
}

// Status is the validity of an artifact slot.
type Status uint8

const (
	// StatusAbsent means no valid value exists.
	StatusAbsent Status = iota
	// StatusPending means the value is being recomputed and must not be read.
	StatusPending
	// StatusPresent means the value is valid.
	StatusPresent
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPresent:
		return "present"
	default:
		return "absent"
	}
}

// Artifact is a versioned value produced by a derivation step.
// Values are replaced wholesale and never mutated after publication.
type Artifact struct {
	Kind       ArtifactKind
	Value      any
	Version    uint64
	ProducedAt time.Time
}

// ArtifactState is a read-only view of one artifact slot.
type ArtifactState struct {
	Kind      ArtifactKind
	Status    Status
	Version   uint64
	Err       error
	UpdatedAt time.Time
}

// ValueAs returns the artifact value as T.
func ValueAs[T any](a Artifact) (T, bool) {
	v, ok := a.Value.(T)
	return v, ok
}
