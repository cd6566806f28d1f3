package ports

import (
	"context"

	"go.trai.ch/xspring/internal/core/domain"
)

//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks

// ArchiveDownloader requests a generated project archive from the service.
type ArchiveDownloader interface {
	// Download stores the archive for req in a temporary file and returns its path.
	// The caller owns the file and must remove it.
	Download(ctx context.Context, req domain.Request) (string, error)
}

// Extractor unpacks a project archive.
type Extractor interface {
	// Extract unpacks the archive at archivePath into destination.
	Extract(ctx context.Context, archivePath, destination string) error
}

// ProjectGenerator turns a finalized request into a project tree on disk.
type ProjectGenerator interface {
	// Generate downloads and extracts the project for req into destination.
	Generate(ctx context.Context, req domain.Request, destination string) error
}
