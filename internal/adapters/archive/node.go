package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xspring/internal/core/ports"
)

// NodeID is the unique identifier for the extractor Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Extractor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Extractor, error) {
			return NewExtractor(), nil
		},
	})
}
