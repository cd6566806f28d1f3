package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xspring/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"

	// ObserverNodeID is the unique identifier for the event observer Graft node.
	ObserverNodeID graft.ID = "adapter.logger.observer"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Observer]{
		ID:        ObserverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Observer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewObserver(log), nil
		},
	})
}
