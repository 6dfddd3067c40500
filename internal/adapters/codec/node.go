package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modgraph/internal/core/ports"
)

// NodeID is the unique identifier for the module codec Graft node.
const NodeID graft.ID = "adapter.module_codec"

func init() {
	graft.Register(graft.Node[ports.ModuleCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleCodec, error) {
			return NewJSONCodec(), nil
		},
	})
}
