//go:build e2e

package e2e_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/rogpeppe/go-internal/testscript"
)

var xspringBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "xspring-e2e-*")
	if err != nil {
		panic(err)
	}

	xspringBinary = filepath.Join(tmpDir, "xspring")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", xspringBinary, "./cmd/xspring")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build xspring binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(xspringBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	env.Setenv("XDG_CACHE_HOME", filepath.Join(homeDir, ".cache"))

	server, err := newInitializr()
	if err != nil {
		return err
	}
	env.Defer(server.Close)
	env.Setenv("XSPRING_SERVICE_URL", server.URL)

	return nil
}

// newInitializr serves the metadata fixture and a small generated project.
func newInitializr() (*httptest.Server, error) {
	metadata, err := os.ReadFile(filepath.Join("fixtures", "metadata.json"))
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(metadata)
	})
	mux.HandleFunc("/starter.zip", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("bootVersion") == "" {
			http.Error(w, `{"message":"Invalid Spring Boot version"}`, http.StatusBadRequest)
			return
		}
		data, err := projectArchive(query.Get("baseDir"), query.Encode())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write(data)
	})
	return httptest.NewServer(mux), nil
}

func projectArchive(baseDir, query string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct{ name, body string }{
		{baseDir + "/request.txt", query + "\n"},
		{baseDir + "/src/main/resources/application.properties", "spring.application.name=" + baseDir + "\n"},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
