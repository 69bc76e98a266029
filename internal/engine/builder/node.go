package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/linear"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.OracleNodeID,
			shell.NodeID,
			linear.NodeID,
			cas.NodeID,
			cas.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			oracle, err := graft.Dep[ports.TimeOracle](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
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

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(oracle, executor, reporter, journal, hasher, telemetry, log), nil
		},
	})
}
