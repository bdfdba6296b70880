package ports

import "go.trai.ch/pathforge/internal/core/domain"

// ScenarioLoader defines the interface for loading scenario files.
//
//go:generate mockgen -source=scenario_loader.go -destination=mocks/mock_scenario_loader.go -package=mocks
type ScenarioLoader interface {
	// Load reads and validates the scenario at path.
	// A directory path is resolved to the scenario file inside it.
	Load(path string) (*domain.Scenario, error)
}
