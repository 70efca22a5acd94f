package ports

import "go.trai.ch/gemmatrix/internal/core/domain"

// ConfigLoader defines the interface for loading a dependencies document.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the dependencies document at path.
	// Validation failures are returned as *domain.ConfigError.
	Load(path string) (*domain.Config, error)
}
