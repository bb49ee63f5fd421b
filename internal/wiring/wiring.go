// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/zix/internal/adapters/config"
	_ "go.trai.ch/zix/internal/adapters/logger"
	_ "go.trai.ch/zix/internal/adapters/manifest"
	_ "go.trai.ch/zix/internal/adapters/nix"
	_ "go.trai.ch/zix/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/zix/internal/app"
)
