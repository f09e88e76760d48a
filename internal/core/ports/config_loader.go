package ports

import "go.trai.ch/autoload/internal/core/domain"

// ConfigLoader defines the interface for loading the autoloader configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration from the given working directory.
	// Without a configuration file it returns defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)
}
