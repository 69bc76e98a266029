// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rebuild/internal/adapters/cas"
	_ "go.trai.ch/rebuild/internal/adapters/config"
	_ "go.trai.ch/rebuild/internal/adapters/fs"
	_ "go.trai.ch/rebuild/internal/adapters/headers"
	_ "go.trai.ch/rebuild/internal/adapters/linear"
	_ "go.trai.ch/rebuild/internal/adapters/logger"
	_ "go.trai.ch/rebuild/internal/adapters/settings"
	_ "go.trai.ch/rebuild/internal/adapters/shell"
	_ "go.trai.ch/rebuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rebuild/internal/app"
	_ "go.trai.ch/rebuild/internal/engine/builder"
	_ "go.trai.ch/rebuild/internal/engine/factory"
)
