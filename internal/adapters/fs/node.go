package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/core/ports"
)

const (
	// ProberNodeID is the unique identifier for the file prober Graft node.
	ProberNodeID graft.ID = "adapter.fs.prober"
	// IncluderNodeID is the unique identifier for the includer Graft node.
	IncluderNodeID graft.ID = "adapter.fs.includer"
)

func init() {
	graft.Register(graft.Node[ports.FileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileProber, error) {
			return NewOSProber(), nil
		},
	})

	graft.Register(graft.Node[ports.Includer]{
		ID:        IncluderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Includer, error) {
			return NewOSIncluder(), nil
		},
	})
}
