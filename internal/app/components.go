package app

import "go.trai.ch/zix/internal/core/ports"

// Components bundles what the entry point needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}
