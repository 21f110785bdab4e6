package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ponder/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ponder/internal/adapters/db"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ponder/internal/adapters/gql"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ponder/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ponder/internal/adapters/schema"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ponder/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/ponder/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			cas.NodeID,
			watcher.NodeID,
			schema.NodeID,
			gql.NodeID,
			db.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.FingerprintStore](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	schemaParser, err := graft.Dep[ports.SchemaParser](ctx)
	if err != nil {
		return nil, err
	}
	gqlBuilder, err := graft.Dep[ports.GqlBuilder](ctx)
	if err != nil {
		return nil, err
	}
	dbBuilder, err := graft.Dep[ports.DbBuilder](ctx)
	if err != nil {
		return nil, err
	}
	return New(log, store, w, schemaParser, gqlBuilder, dbBuilder), nil
}
