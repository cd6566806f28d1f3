package ports

import (
	"context"

	"go.trai.ch/xspring/internal/core/domain"
)

// CatalogClient retrieves the capability catalog of the Initializr service.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogClient interface {
	// Fetch downloads and decodes the catalog. Every call hits the service.
	Fetch(ctx context.Context) (*domain.Catalog, error)
}
