package ports

import "jarscope/internal/domain"

// SettingsStore persists display settings between runs
type SettingsStore interface {
	Load() (domain.DisplaySettings, error)
	Save(settings domain.DisplaySettings) error
	Close() error
}
