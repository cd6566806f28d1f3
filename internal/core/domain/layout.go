package domain

import (
	"path/filepath"
	"time"
)

const (
	// AppName is the name used for config, cache and log locations.
	AppName = "xspring"

	// DefaultServiceURL is the public Initializr instance.
	DefaultServiceURL = "https://start.spring.io"

	// DefaultTimeout bounds every HTTP exchange unless configured otherwise.
	DefaultTimeout = 30 * time.Second

	// ConfigFileName is the name of the optional config file.
	ConfigFileName = "config.yaml"

	// LogDirName is the name of the log directory under the user cache directory.
	LogDirName = "logs"

	// StarterPath is the generation endpoint relative to the service root.
	StarterPath = "/starter.zip"

	// StagingPattern is the os.MkdirTemp pattern of the extraction staging directory.
	StagingPattern = ".xspring-extract-*"

	// DownloadPattern is the os.CreateTemp pattern of the downloaded archive.
	DownloadPattern = "xspring-*.zip"

	// EnvServiceURL overrides the service URL.
	EnvServiceURL = "XSPRING_SERVICE_URL"

	// EnvTimeout overrides the HTTP timeout.
	EnvTimeout = "XSPRING_TIMEOUT"

	// EnvLogDir overrides the log directory. An empty value disables file logging.
	EnvLogDir = "XSPRING_LOG_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns the config file location below the user config directory.
func DefaultConfigPath(configDir string) string {
	return filepath.Join(configDir, AppName, ConfigFileName)
}

// DefaultLogDir returns the log directory below the user cache directory.
func DefaultLogDir(cacheDir string) string {
	return filepath.Join(cacheDir, AppName, LogDirName)
}

// LogFileName returns the name of the daily log file for the given day.
func LogFileName(day time.Time) string {
	return AppName + "-" + day.Format(time.DateOnly) + ".log"
}

// UserAgent returns the client label sent to the service.
func UserAgent(version string) string {
	return AppName + "/" + version
}
