package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pathforge/internal/adapters/logger"
	"go.trai.ch/pathforge/internal/core/ports"
)

// NodeID is the unique identifier for the scenario watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.ScenarioWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ScenarioWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
