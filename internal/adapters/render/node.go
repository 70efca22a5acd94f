package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gemmatrix/internal/adapters/hasher"
	"go.trai.ch/gemmatrix/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{hasher.NodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			h, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(h), nil
		},
	})
}
