// Package config resolves xspring settings from defaults, config.yaml, .env and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/xspring/internal/build"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DotEnvFileName is the optional environment file read from the working directory.
const DotEnvFileName = ".env"

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader.
// Precedence, highest first: process environment, .env file, config file, defaults.
type Loader struct {
	// ConfigPath is the YAML config file. A missing file is not an error.
	ConfigPath string
	// DotEnvPath is the .env file. A missing file is not an error.
	DotEnvPath string
	// DefaultLogDir is used when neither file nor environment set a log directory.
	DefaultLogDir string
	// Version is reported in the user agent.
	Version string

	lookupEnv func(string) (string, bool)
}

// NewLoader creates a loader using the user config and cache directories.
func NewLoader() *Loader {
	l := &Loader{
		DotEnvPath: DotEnvFileName,
		Version:    build.Version,
		lookupEnv:  os.LookupEnv,
	}
	if dir, err := os.UserConfigDir(); err == nil {
		l.ConfigPath = domain.DefaultConfigPath(dir)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		l.DefaultLogDir = domain.DefaultLogDir(dir)
	}
	return l
}

// Load merges all sources and validates the result.
func (l *Loader) Load() (domain.Settings, error) {
	settings := domain.Settings{
		ServiceURL: domain.DefaultServiceURL,
		Timeout:    domain.DefaultTimeout,
		LogDir:     l.DefaultLogDir,
		UserAgent:  domain.UserAgent(l.Version),
	}

	file, err := l.readFile()
	if err != nil {
		return domain.Settings{}, err
	}
	if file.ServiceURL != nil {
		settings.ServiceURL = *file.ServiceURL
	}
	if file.LogDir != nil {
		settings.LogDir = *file.LogDir
	}
	timeout := ""
	if file.Timeout != nil {
		timeout = *file.Timeout
	}

	env, err := l.readDotEnv()
	if err != nil {
		return domain.Settings{}, err
	}
	if v, ok := l.lookup(env, domain.EnvServiceURL); ok {
		settings.ServiceURL = v
	}
	if v, ok := l.lookup(env, domain.EnvTimeout); ok {
		timeout = v
	}
	if v, ok := l.lookup(env, domain.EnvLogDir); ok {
		settings.LogDir = v
	}

	settings.ServiceURL = strings.TrimRight(strings.TrimSpace(settings.ServiceURL), "/")
	if err := domain.ValidateServiceURL(settings.ServiceURL); err != nil {
		return domain.Settings{}, err
	}
	if timeout != "" {
		d, err := domain.ParseTimeout(timeout)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Timeout = d
	}
	settings.LogDir = strings.TrimSpace(settings.LogDir)

	return settings, nil
}

func (l *Loader) readFile() (File, error) {
	var file File
	if l.ConfigPath == "" {
		return file, nil
	}

	data, err := os.ReadFile(l.ConfigPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, zerr.With(domain.WrapCause(err, domain.ErrConfigReadFailed), "path", l.ConfigPath)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, zerr.With(domain.WrapCause(err, domain.ErrConfigParseFailed), "path", l.ConfigPath)
	}
	return file, nil
}

func (l *Loader) readDotEnv() (map[string]string, error) {
	if l.DotEnvPath == "" {
		return nil, nil
	}

	env, err := godotenv.Read(l.DotEnvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.WrapCause(err, domain.ErrConfigParseFailed), "path", l.DotEnvPath)
	}
	return env, nil
}

// lookup prefers the process environment over the .env file, matching godotenv.Load.
func (l *Loader) lookup(dotenv map[string]string, key string) (string, bool) {
	lookupEnv := l.lookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if v, ok := lookupEnv(key); ok {
		return v, true
	}
	v, ok := dotenv[key]
	return v, ok
}
