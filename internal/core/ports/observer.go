package ports

import "go.trai.ch/xspring/internal/core/domain"

// Observer receives diagnostic events from the core.
//
//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type Observer interface {
	Observe(event domain.Event)
}
