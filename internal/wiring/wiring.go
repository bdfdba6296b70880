// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pathforge/internal/adapters/config"
	_ "go.trai.ch/pathforge/internal/adapters/logger"
	_ "go.trai.ch/pathforge/internal/adapters/metrics"
	_ "go.trai.ch/pathforge/internal/adapters/render"
	_ "go.trai.ch/pathforge/internal/adapters/telemetry"
	_ "go.trai.ch/pathforge/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/pathforge/internal/app"
)
