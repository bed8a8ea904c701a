package raster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tabicons/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.IconRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IconRenderer, error) {
			return New(), nil
		},
	})
}
