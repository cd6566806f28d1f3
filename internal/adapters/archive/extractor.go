// Package archive implements the Extractor port for zip archives.
package archive

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxEntryBytes caps a single uncompressed entry (1 GiB).
const maxEntryBytes = 1 << 30

// Extractor unpacks zip archives through a staging directory inside the destination.
type Extractor struct{}

var _ ports.Extractor = (*Extractor)(nil)

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract unpacks the whole archive into a hidden staging directory inside destination
// and then moves each top-level entry into place. Existing directories are merged and
// existing files overwritten. The staging directory is always removed.
func (e *Extractor) Extract(ctx context.Context, archivePath, destination string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		if reader != nil {
			_ = reader.Close()
		}
		if errors.Is(err, zip.ErrInsecurePath) {
			return zerr.With(domain.WrapCause(domain.ErrUnsafeArchivePath, domain.ErrExtraction), "archive", archivePath)
		}
		return zerr.With(domain.WrapCause(err, domain.ErrExtraction), "archive", archivePath)
	}
	defer func() {
		_ = reader.Close()
	}()

	staging, err := os.MkdirTemp(destination, domain.StagingPattern)
	if err != nil {
		return zerr.With(domain.WrapCause(err, domain.ErrExtraction), "destination", destination)
	}
	defer func() {
		_ = os.RemoveAll(staging)
	}()

	for _, f := range reader.File {
		if err := ctx.Err(); err != nil {
			return domain.WrapCause(err, domain.ErrExtraction)
		}
		if err := extractEntry(f, staging); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(staging)
	if err != nil {
		return domain.WrapCause(err, domain.ErrExtraction)
	}
	for _, entry := range entries {
		src := filepath.Join(staging, entry.Name())
		dst := filepath.Join(destination, entry.Name())
		if err := moveInto(src, dst); err != nil {
			return zerr.With(domain.WrapCause(err, domain.ErrExtraction), "path", dst)
		}
	}

	return nil
}

// extractEntry writes a single archive entry below root.
func extractEntry(f *zip.File, root string) error {
	name := filepath.FromSlash(f.Name)
	if !filepath.IsLocal(name) {
		return unsafeEntry(f.Name)
	}
	target := filepath.Join(root, name)

	mode := f.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return unsafeEntry(f.Name)
	case mode.IsDir():
		if err := os.MkdirAll(target, domain.DirPerm); err != nil {
			return entryError(err, f.Name)
		}
		return nil
	}

	if f.UncompressedSize64 > maxEntryBytes {
		return zerr.With(zerr.Wrap(domain.ErrExtraction, "archive entry too large"), "entry", f.Name)
	}

	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return entryError(err, f.Name)
	}

	perm := mode.Perm()
	if perm == 0 {
		perm = domain.FilePerm
	}

	src, err := f.Open()
	if err != nil {
		return entryError(err, f.Name)
	}
	defer func() {
		_ = src.Close()
	}()

	//nolint:gosec // target is checked to stay below root
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return entryError(err, f.Name)
	}

	if _, err := io.Copy(dst, io.LimitReader(src, maxEntryBytes)); err != nil {
		_ = dst.Close()
		return entryError(err, f.Name)
	}
	if err := dst.Close(); err != nil {
		return entryError(err, f.Name)
	}
	return nil
}

// moveInto renames src to dst, merging directories that already exist.
func moveInto(src, dst string) error {
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return err
	}

	dstInfo, err := os.Lstat(dst)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return os.Rename(src, dst)
	case err != nil:
		return err
	}

	if !srcInfo.IsDir() {
		if dstInfo.IsDir() {
			return zerr.With(zerr.New("cannot replace directory with file"), "path", dst)
		}
		return os.Rename(src, dst)
	}

	if !dstInfo.IsDir() {
		return zerr.With(zerr.New("cannot replace file with directory"), "path", dst)
	}

	children, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := moveInto(filepath.Join(src, child.Name()), filepath.Join(dst, child.Name())); err != nil {
			return err
		}
	}
	return nil
}

func unsafeEntry(name string) error {
	return zerr.With(domain.WrapCause(domain.ErrUnsafeArchivePath, domain.ErrExtraction), "entry", name)
}

func entryError(err error, name string) error {
	return zerr.With(domain.WrapCause(err, domain.ErrExtraction), "entry", name)
}
