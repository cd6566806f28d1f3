package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xspring/internal/adapters/config"
	"go.trai.ch/xspring/internal/core/domain"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func newLoader(t *testing.T, configYAML, dotenv string, vars map[string]string) *config.Loader {
	t.Helper()
	dir := t.TempDir()

	l := &config.Loader{
		ConfigPath:    filepath.Join(dir, "config.yaml"),
		DotEnvPath:    filepath.Join(dir, ".env"),
		DefaultLogDir: "/cache/xspring/logs",
		Version:       "1.2.3",
	}
	if configYAML != "" {
		require.NoError(t, os.WriteFile(l.ConfigPath, []byte(configYAML), 0o600))
	}
	if dotenv != "" {
		require.NoError(t, os.WriteFile(l.DotEnvPath, []byte(dotenv), 0o600))
	}
	return l.WithLookupEnv(env(vars))
}

func TestLoader_Defaults(t *testing.T) {
	settings, err := newLoader(t, "", "", nil).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		ServiceURL: "https://start.spring.io",
		Timeout:    30 * time.Second,
		LogDir:     "/cache/xspring/logs",
		UserAgent:  "xspring/1.2.3",
	}, settings)
}

func TestLoader_ConfigFile(t *testing.T) {
	yaml := "service_url: http://localhost:8080/\ntimeout: 5s\nlog_dir: /var/log/xspring\n"

	settings, err := newLoader(t, yaml, "", nil).Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", settings.ServiceURL)
	assert.Equal(t, 5*time.Second, settings.Timeout)
	assert.Equal(t, "/var/log/xspring", settings.LogDir)
}

func TestLoader_Precedence(t *testing.T) {
	yaml := "service_url: http://file.example\ntimeout: 5s\n"
	dotenv := "XSPRING_SERVICE_URL=http://dotenv.example\nXSPRING_TIMEOUT=7s\n"

	tests := []struct {
		name        string
		vars        map[string]string
		wantURL     string
		wantTimeout time.Duration
	}{
		{
			name:        "dotenv beats file",
			wantURL:     "http://dotenv.example",
			wantTimeout: 7 * time.Second,
		},
		{
			name:        "environment beats dotenv",
			vars:        map[string]string{"XSPRING_SERVICE_URL": "http://env.example"},
			wantURL:     "http://env.example",
			wantTimeout: 7 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := newLoader(t, yaml, dotenv, tt.vars).Load()

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, settings.ServiceURL)
			assert.Equal(t, tt.wantTimeout, settings.Timeout)
		})
	}
}

func TestLoader_EmptyLogDirDisablesFileLogging(t *testing.T) {
	settings, err := newLoader(t, "", "", map[string]string{"XSPRING_LOG_DIR": ""}).Load()
	require.NoError(t, err)
	assert.Empty(t, settings.LogDir)

	settings, err = newLoader(t, "log_dir: \"\"\n", "", nil).Load()
	require.NoError(t, err)
	assert.Empty(t, settings.LogDir)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		vars    map[string]string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			yaml:    "service_url: [unterminated\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "relative service url",
			yaml:    "service_url: start.spring.io\n",
			wantErr: domain.ErrInvalidServiceURL,
		},
		{
			name:    "zero timeout",
			vars:    map[string]string{"XSPRING_TIMEOUT": "0s"},
			wantErr: domain.ErrInvalidTimeout,
		},
		{
			name:    "timeout without unit",
			yaml:    "timeout: \"30\"\n",
			wantErr: domain.ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t, tt.yaml, "", tt.vars).Load()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_UnreadableConfig(t *testing.T) {
	l := newLoader(t, "", "", nil)
	require.NoError(t, os.Mkdir(l.ConfigPath, 0o700))

	_, err := l.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestNewLoader(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	l := config.NewLoader()

	assert.Equal(t, filepath.Join("/xdg/config", "xspring", "config.yaml"), l.ConfigPath)
	assert.Equal(t, filepath.Join("/xdg/cache", "xspring", "logs"), l.DefaultLogDir)
	assert.Equal(t, config.DotEnvFileName, l.DotEnvPath)
}
