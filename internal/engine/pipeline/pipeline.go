// Package pipeline turns a finalized request into a project tree on disk.
package pipeline

import (
	"context"
	"os"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline downloads the generated archive and extracts it.
type Pipeline struct {
	downloader ports.ArchiveDownloader
	extractor  ports.Extractor
	observer   ports.Observer
}

var _ ports.ProjectGenerator = (*Pipeline)(nil)

// New creates a Pipeline.
func New(downloader ports.ArchiveDownloader, extractor ports.Extractor, observer ports.Observer) *Pipeline {
	return &Pipeline{
		downloader: downloader,
		extractor:  extractor,
		observer:   observer,
	}
}

// Generate downloads the archive for req and extracts it into destination.
// The destination is only created once the download has succeeded.
func (p *Pipeline) Generate(ctx context.Context, req domain.Request, destination string) error {
	archivePath, err := p.downloader.Download(ctx, req)
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(archivePath)
	}()

	p.observe(domain.EventArchiveDownloaded, "archive downloaded", map[string]any{
		"base_dir": req.BaseDir(),
	})

	if err := os.MkdirAll(destination, domain.DirPerm); err != nil {
		return zerr.With(domain.WrapCause(err, domain.ErrExtraction), "destination", destination)
	}

	if err := p.extractor.Extract(ctx, archivePath, destination); err != nil {
		return err
	}

	p.observe(domain.EventArchiveExtracted, "archive extracted", map[string]any{
		"destination": destination,
		"base_dir":    req.BaseDir(),
	})
	return nil
}

func (p *Pipeline) observe(kind domain.EventKind, msg string, fields map[string]any) {
	if p.observer == nil {
		return
	}
	p.observer.Observe(domain.NewEvent(kind, msg, fields))
}
