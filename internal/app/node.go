package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/settings"           //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/engine/builder"
	"go.trai.ch/rebuild/internal/engine/factory"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *settings.Settings
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			factory.NodeID,
			builder.NodeID,
			fs.RemoverNodeID,
			cas.NodeID,
			cas.HasherNodeID,
			linear.NodeID,
			progrock.NodeID,
			settings.NodeID,
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
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	f, err := graft.Dep[*factory.Factory](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[*builder.Builder](ctx)
	if err != nil {
		return nil, err
	}

	remover, err := graft.Dep[ports.FileRemover](ctx)
	if err != nil {
		return nil, err
	}

	journal, err := graft.Dep[ports.BuildJournal](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	s, err := graft.Dep[*settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, f, b, remover, journal, hasher, reporter, telemetry, s, log), nil
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

	s, err := graft.Dep[*settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: s,
	}, nil
}
