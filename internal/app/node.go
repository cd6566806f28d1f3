package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xspring/internal/adapters/archive" //nolint:depguard // Wired in app layer
	"go.trai.ch/xspring/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xspring/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xspring/internal/core/ports"
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
			logger.ObserverNodeID,
			archive.NodeID,
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
	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	observer, err := graft.Dep[ports.Observer](ctx)
	if err != nil {
		return nil, err
	}

	extractor, err := graft.Dep[ports.Extractor](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, log, observer, extractor), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
