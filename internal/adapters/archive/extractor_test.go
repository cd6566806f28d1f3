package archive_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xspring/internal/adapters/archive"
	"go.trai.ch/xspring/internal/core/domain"
)

type entry struct {
	name    string
	content string
	mode    fs.FileMode
}

func writeArchive(t *testing.T, entries ...entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starter.zip")

	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		mode := e.mode
		if mode == 0 {
			mode = domain.FilePerm
		}
		hdr.SetMode(mode)

		fw, err := w.CreateHeader(hdr)
		require.NoError(t, err)
		_, err = fw.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func assertNoStaging(t *testing.T, dest string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dest, domain.StagingPattern))
	require.NoError(t, err)
	assert.Empty(t, matches, "staging directory must be removed")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExtract(t *testing.T) {
	path := writeArchive(t,
		entry{name: "demo-app/", mode: fs.ModeDir | 0o755},
		entry{name: "demo-app/pom.xml", content: "<project/>"},
		entry{name: "demo-app/mvnw", content: "#!/bin/sh", mode: 0o755},
		entry{name: "demo-app/src/main/java/com/example/DemoApplication.java", content: "class DemoApplication {}"},
	)
	dest := t.TempDir()

	err := archive.NewExtractor().Extract(context.Background(), path, dest)
	require.NoError(t, err)

	assert.Equal(t, "<project/>", readFile(t, filepath.Join(dest, "demo-app", "pom.xml")))
	assert.Equal(t, "class DemoApplication {}",
		readFile(t, filepath.Join(dest, "demo-app", "src", "main", "java", "com", "example", "DemoApplication.java")))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dest, "demo-app", "mvnw"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode().Perm()&0o100, "mvnw should stay executable")
	}

	assertNoStaging(t, dest)
}

func TestExtract_MergesIntoExistingTree(t *testing.T) {
	dest := t.TempDir()
	project := filepath.Join(dest, "demo-app")
	require.NoError(t, os.MkdirAll(project, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(project, "NOTES.md"), []byte("mine"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(project, "pom.xml"), []byte("old"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "unrelated.txt"), []byte("keep"), domain.FilePerm))

	path := writeArchive(t,
		entry{name: "demo-app/pom.xml", content: "new"},
		entry{name: "demo-app/HELP.md", content: "help"},
	)

	err := archive.NewExtractor().Extract(context.Background(), path, dest)
	require.NoError(t, err)

	assert.Equal(t, "new", readFile(t, filepath.Join(project, "pom.xml")))
	assert.Equal(t, "help", readFile(t, filepath.Join(project, "HELP.md")))
	assert.Equal(t, "mine", readFile(t, filepath.Join(project, "NOTES.md")))
	assert.Equal(t, "keep", readFile(t, filepath.Join(dest, "unrelated.txt")))
	assertNoStaging(t, dest)
}

func TestExtract_RejectsUnsafePaths(t *testing.T) {
	tests := []struct {
		name  string
		entry entry
	}{
		{name: "parent traversal", entry: entry{name: "../evil.txt", content: "x"}},
		{name: "nested traversal", entry: entry{name: "demo-app/../../evil.txt", content: "x"}},
		{name: "absolute path", entry: entry{name: "/tmp/evil.txt", content: "x"}},
		{name: "symlink", entry: entry{name: "demo-app/link", content: "/etc/passwd", mode: fs.ModeSymlink | 0o777}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := t.TempDir()
			dest := filepath.Join(parent, "out")
			require.NoError(t, os.MkdirAll(dest, domain.DirPerm))

			path := writeArchive(t,
				entry{name: "demo-app/pom.xml", content: "<project/>"},
				tt.entry,
			)

			err := archive.NewExtractor().Extract(context.Background(), path, dest)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnsafeArchivePath)
			assert.ErrorIs(t, err, domain.ErrExtraction)

			_, statErr := os.Stat(filepath.Join(parent, "evil.txt"))
			assert.True(t, os.IsNotExist(statErr))
			_, statErr = os.Stat(filepath.Join(dest, "demo-app"))
			assert.True(t, os.IsNotExist(statErr), "no partial tree may be moved into place")
			assertNoStaging(t, dest)
		})
	}
}

func TestExtract_InsecurePathClosesArchive(t *testing.T) {
	t.Setenv("GODEBUG", "zipinsecurepath=0")
	path := writeArchive(t, entry{name: "../evil.txt", content: "x"})
	before := openFiles(t)

	err := archive.NewExtractor().Extract(context.Background(), path, t.TempDir())

	require.ErrorIs(t, err, domain.ErrUnsafeArchivePath)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assert.Equal(t, before, openFiles(t))
}

func openFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("open file descriptors are not listable on this platform")
	}
	return len(entries)
}

func TestExtract_CorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.zip")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), domain.FilePerm))
	dest := t.TempDir()

	err := archive.NewExtractor().Extract(context.Background(), path, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtract_MissingArchive(t *testing.T) {
	err := archive.NewExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "nope.zip"), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestExtract_Cancelled(t *testing.T) {
	path := writeArchive(t, entry{name: "demo-app/pom.xml", content: "<project/>"})
	dest := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := archive.NewExtractor().Extract(ctx, path, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrExtraction)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtract_FileOverDirectoryConflict(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "demo-app", "pom.xml"), domain.DirPerm))

	path := writeArchive(t, entry{name: "demo-app/pom.xml", content: "<project/>"})

	err := archive.NewExtractor().Extract(context.Background(), path, dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assertNoStaging(t, dest)
}
