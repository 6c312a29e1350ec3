package execution

import (
	"ctest/internal/domain"
	"ctest/internal/registry"
)

// Executor runs every case of a registry and returns the run summary
type Executor interface {
	Execute(reg *registry.Registry) (domain.RunSummary, error)
}
