package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// SinkFactoryNodeID is the unique identifier for the log sink factory Graft node.
	SinkFactoryNodeID graft.ID = "adapter.logger.sink_factory"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.LogSinkFactory]{
		ID:        SinkFactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.LogSinkFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSinkFactory(log), nil
		},
	})
}
