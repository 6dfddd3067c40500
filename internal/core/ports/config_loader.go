package ports

import "go.trai.ch/modgraph/internal/core/domain"

// ConfigLoader defines the interface for loading project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration of the given project root.
	// A missing configuration file yields the defaults.
	Load(root string) (*domain.Config, error)
}
