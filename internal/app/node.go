package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pathforge/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pathforge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pathforge/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pathforge/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pathforge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pathforge/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pathforge/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			render.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ScenarioLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.ScenarioWatcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, tracer, m, renderer).WithWatcher(w), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
