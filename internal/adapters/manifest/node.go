package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zix/internal/adapters/config"
	"go.trai.ch/zix/internal/adapters/logger"
	"go.trai.ch/zix/internal/core/domain"
	"go.trai.ch/zix/internal/core/ports"
)

// NodeID is the unique identifier for the manifest store Graft node.
const NodeID graft.ID = "adapter.manifest_store"

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg, log), nil
		},
	})
}
