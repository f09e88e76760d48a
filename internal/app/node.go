package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/adapters/host"     //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/adapters/shared"   //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/adapters/snapshot" //nolint:depguard // Wired in app layer
	"go.trai.ch/autoload/internal/core/ports"
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
			host.NodeID,
			fs.ProberNodeID,
			fs.IncluderNodeID,
			snapshot.NodeID,
			shared.NodeID,
			logger.SinkFactoryNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			host.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.FileProber](ctx)
	if err != nil {
		return nil, err
	}

	includer, err := graft.Dep[ports.Includer](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	sharedProvider, err := graft.Dep[ports.SharedCacheProvider](ctx)
	if err != nil {
		return nil, err
	}

	sinks, err := graft.Dep[ports.LogSinkFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, h, prober, includer, snapshots, sharedProvider, sinks, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
		Host:   h,
	}, nil
}
