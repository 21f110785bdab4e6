// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ponder/internal/adapters/cas"
	_ "go.trai.ch/ponder/internal/adapters/db"
	_ "go.trai.ch/ponder/internal/adapters/gql"
	_ "go.trai.ch/ponder/internal/adapters/logger"
	_ "go.trai.ch/ponder/internal/adapters/schema"
	_ "go.trai.ch/ponder/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ponder/internal/app"
)
