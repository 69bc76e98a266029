package factory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/headers"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/linear"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the factory Graft node.
const NodeID graft.ID = "engine.factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			headers.NodeID,
			linear.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			scanner, err := graft.Dep[ports.HeaderScanner](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			opts, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(scanner, reporter, opts), nil
		},
	})
}
