package memory

import (
	"sync"

	"jarscope/internal/domain"
)

// Settings implements ports.SettingsStore without persistence. Used when the
// settings database cannot be opened and in tests.
type Settings struct {
	mu       sync.Mutex
	settings domain.DisplaySettings
}

// NewSettings creates a store holding the default settings
func NewSettings() *Settings {
	return &Settings{}
}

func (s *Settings) Load() (domain.DisplaySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

func (s *Settings) Save(settings domain.DisplaySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

func (s *Settings) Close() error {
	return nil
}
