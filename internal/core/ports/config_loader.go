package ports

import "go.trai.ch/zix/internal/core/domain"

// ConfigLoader defines the interface for resolving zix's filesystem layout and settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the effective configuration from defaults, the environment and the
	// optional config file.
	Load() (*domain.Config, error)
}
