// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tabicons/internal/adapters/config"
	_ "go.trai.ch/tabicons/internal/adapters/fs"
	_ "go.trai.ch/tabicons/internal/adapters/logger"
	_ "go.trai.ch/tabicons/internal/adapters/raster"
	_ "go.trai.ch/tabicons/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/tabicons/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/tabicons/internal/app"
)
