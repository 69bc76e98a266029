package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/core/ports"
)

const (
	OracleNodeID  graft.ID = "adapter.fs.oracle"
	RemoverNodeID graft.ID = "adapter.fs.remover"
)

func init() {
	graft.Register(graft.Node[ports.TimeOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TimeOracle, error) {
			return NewOracle(), nil
		},
	})

	graft.Register(graft.Node[ports.FileRemover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileRemover, error) {
			return NewRemover(), nil
		},
	})
}
