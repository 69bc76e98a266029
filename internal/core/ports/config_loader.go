package ports

import "go.trai.ch/rebuild/internal/core/domain"

// ConfigLoader defines the interface for loading target declarations from a build file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build file at path and returns the declarations in file order.
	Load(path string) ([]domain.TargetSpec, error)
}
