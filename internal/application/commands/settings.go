package commands

import (
	"fmt"

	"jarscope/internal/application"
	"jarscope/internal/domain"
	"jarscope/internal/ports"
)

// ToggleSettingCommand flips one display setting and persists the result
type ToggleSettingCommand struct {
	store   ports.SettingsStore
	Current application.DisplaySettings
	Key     string
}

// NewToggleSettingCommand creates a new ToggleSettingCommand
func NewToggleSettingCommand(store ports.SettingsStore, current application.DisplaySettings, key string) *ToggleSettingCommand {
	return &ToggleSettingCommand{
		store:   store,
		Current: current,
		Key:     key,
	}
}

// Validate checks that the key names a known setting
func (c *ToggleSettingCommand) Validate() error {
	if _, err := domain.ParseSettingKey(c.Key); err != nil {
		return &application.ValidationError{
			Field:   "setting",
			Message: err.Error(),
		}
	}
	return nil
}

// Execute returns the new settings after saving them
func (c *ToggleSettingCommand) Execute() (application.DisplaySettings, error) {
	if err := c.Validate(); err != nil {
		return c.Current, err
	}

	key, _ := domain.ParseSettingKey(c.Key)
	next := c.Current.With(key, !c.Current.Get(key))
	if err := c.store.Save(next); err != nil {
		return c.Current, fmt.Errorf("failed to save settings: %w", err)
	}
	return next, nil
}
