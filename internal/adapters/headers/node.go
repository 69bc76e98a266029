package headers

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/logger"
	"go.trai.ch/rebuild/internal/adapters/shell"
	"go.trai.ch/rebuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.headers"

func init() {
	graft.Register(graft.Node[ports.HeaderScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.HeaderScanner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(executor, log), nil
		},
	})
}
