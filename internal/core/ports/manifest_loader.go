package ports

import "go.trai.ch/tabicons/internal/core/domain"

// ManifestLoader defines the interface for loading the generation plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path. When the file does not exist and
	// required is false, the built-in plan is returned.
	Load(path string, required bool) (*domain.GenerationPlan, error)
}
