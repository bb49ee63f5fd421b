package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zix/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/zix/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/zix/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/zix/internal/adapters/nix"      //nolint:depguard // Wired in app layer
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
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
			config.ConfigNodeID,
			manifest.NodeID,
			nix.FlakeNodeID,
			nix.ToolNodeID,
			nix.InspectorNodeID,
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
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	flake, err := graft.Dep[ports.BuildDescriptor](ctx)
	if err != nil {
		return nil, err
	}

	tool, err := graft.Dep[ports.BuildTool](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.ProfileInspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, store, flake, tool, inspector, log), nil
}
