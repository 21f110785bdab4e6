package db

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ponder/internal/core/ports"
)

// NodeID is the unique identifier for the database schema builder Graft node.
const NodeID graft.ID = "adapter.db"

func init() {
	graft.Register(graft.Node[ports.DbBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DbBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
