// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modgraph/internal/adapters/codec"
	_ "go.trai.ch/modgraph/internal/adapters/config"
	_ "go.trai.ch/modgraph/internal/adapters/fs"
	_ "go.trai.ch/modgraph/internal/adapters/logger"
	_ "go.trai.ch/modgraph/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/modgraph/internal/app"
)
