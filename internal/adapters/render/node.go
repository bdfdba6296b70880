package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pathforge/internal/core/ports"
)

// NodeID is the unique identifier for the text renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(), nil
		},
	})
}
