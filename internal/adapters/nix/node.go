package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zix/internal/adapters/config"
	"go.trai.ch/zix/internal/adapters/logger"
	"go.trai.ch/zix/internal/adapters/shell"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

const (
	// FlakeNodeID is the unique identifier for the build descriptor Graft node.
	FlakeNodeID graft.ID = "adapter.nix.flake"
	// ToolNodeID is the unique identifier for the build tool Graft node.
	ToolNodeID graft.ID = "adapter.nix.tool"
	// InspectorNodeID is the unique identifier for the profile inspector Graft node.
	InspectorNodeID graft.ID = "adapter.nix.inspector"
)

func init() {
	graft.Register(graft.Node[ports.BuildDescriptor]{
		ID:        FlakeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildDescriptor, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFlake(cfg, log), nil
		},
	})

	graft.Register(graft.Node[ports.BuildTool]{
		ID:        ToolNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(cfg, executor), nil
		},
	})

	graft.Register(graft.Node[ports.ProfileInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProfileInspector, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProfileInspector(cfg, executor, log), nil
		},
	})
}
