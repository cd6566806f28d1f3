package ports

import "go.trai.ch/xspring/internal/core/domain"

// SettingsLoader resolves the runtime configuration.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load merges defaults, the config file and the environment.
	Load() (domain.Settings, error)
}
