package config

import (
	"os"
	"strconv"
)

const (
	DefaultHistorySize = 10
	MaxHistorySize     = 100
	DefaultExportDir   = "."
)

// HistorySize returns the history capacity from JARSCOPE_HISTORY_SIZE,
// falling back to DefaultHistorySize. Values are clamped to 1..MaxHistorySize.
func HistorySize() int {
	env := os.Getenv("JARSCOPE_HISTORY_SIZE")
	if env == "" {
		return DefaultHistorySize
	}
	n, err := strconv.Atoi(env)
	if err != nil {
		return DefaultHistorySize
	}
	return ClampHistorySize(n)
}

// ClampHistorySize limits n to 1..MaxHistorySize
func ClampHistorySize(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxHistorySize:
		return MaxHistorySize
	default:
		return n
	}
}

// SettingsDBPath returns the settings database path from JARSCOPE_SETTINGS_DB.
// Empty means the store picks its default location.
func SettingsDBPath() string {
	return os.Getenv("JARSCOPE_SETTINGS_DB")
}

// ExportDir returns the export directory from JARSCOPE_EXPORT_DIR,
// falling back to DefaultExportDir.
func ExportDir() string {
	if env := os.Getenv("JARSCOPE_EXPORT_DIR"); env != "" {
		return env
	}
	return DefaultExportDir
}
