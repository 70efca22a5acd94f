package matrix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemmatrix/internal/adapters/logger"
	"go.trai.ch/gemmatrix/internal/core/ports"
)

// NodeID is the unique identifier for the matrix builder Graft node.
const NodeID graft.ID = "engine.matrix_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(log), nil
		},
	})
}
