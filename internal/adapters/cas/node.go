package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/settings"
	"go.trai.ch/rebuild/internal/core/ports"
)

const (
	NodeID       graft.ID = "adapter.build_journal"
	HasherNodeID graft.ID = "adapter.hasher"
)

func init() {
	graft.Register(graft.Node[ports.BuildJournal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.BuildJournal, error) {
			s, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(s.JournalPath()), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
