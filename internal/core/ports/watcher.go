package ports

import "context"

// ScenarioWatcher reports edits to a scenario file.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type ScenarioWatcher interface {
	// Changes signals once per settled burst of writes to the scenario at path.
	// A directory path is resolved to the scenario file inside it. The channel
	// is closed when ctx ends.
	Changes(ctx context.Context, path string) (<-chan struct{}, error)
}
