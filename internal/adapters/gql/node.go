package gql

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ponder/internal/core/ports"
)

// NodeID is the unique identifier for the GraphQL builder Graft node.
const NodeID graft.ID = "adapter.gql"

func init() {
	graft.Register(graft.Node[ports.GqlBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GqlBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
