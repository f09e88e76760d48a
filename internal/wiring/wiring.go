// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/autoload/internal/adapters/config"
	_ "go.trai.ch/autoload/internal/adapters/fs"
	_ "go.trai.ch/autoload/internal/adapters/host"
	_ "go.trai.ch/autoload/internal/adapters/logger"
	_ "go.trai.ch/autoload/internal/adapters/shared"
	_ "go.trai.ch/autoload/internal/adapters/snapshot"
	// Register app nodes.
	_ "go.trai.ch/autoload/internal/app"
)
