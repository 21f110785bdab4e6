package schema

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ponder/internal/core/ports"
)

// NodeID is the unique identifier for the schema parser Graft node.
const NodeID graft.ID = "adapter.schema"

func init() {
	graft.Register(graft.Node[ports.SchemaParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaParser, error) {
			return NewParser(), nil
		},
	})
}
