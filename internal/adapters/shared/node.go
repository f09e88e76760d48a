package shared

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/core/ports"
)

// NodeID is the unique identifier for the shared cache provider Graft node.
const NodeID graft.ID = "adapter.shared_cache_provider"

func init() {
	graft.Register(graft.Node[ports.SharedCacheProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SharedCacheProvider, error) {
			return NewProvider(), nil
		},
	})
}
