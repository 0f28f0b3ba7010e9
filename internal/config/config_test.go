package config

import "testing"

func TestHistorySize(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{name: "unset", env: "", want: DefaultHistorySize},
		{name: "valid", env: "25", want: 25},
		{name: "not a number", env: "many", want: DefaultHistorySize},
		{name: "zero clamps to one", env: "0", want: 1},
		{name: "negative clamps to one", env: "-5", want: 1},
		{name: "too large", env: "1000", want: MaxHistorySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JARSCOPE_HISTORY_SIZE", tt.env)
			if got := HistorySize(); got != tt.want {
				t.Errorf("HistorySize() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestExportDir(t *testing.T) {
	t.Setenv("JARSCOPE_EXPORT_DIR", "")
	if got := ExportDir(); got != DefaultExportDir {
		t.Errorf("ExportDir() = %q, expected %q", got, DefaultExportDir)
	}

	t.Setenv("JARSCOPE_EXPORT_DIR", "/tmp/out")
	if got := ExportDir(); got != "/tmp/out" {
		t.Errorf("ExportDir() = %q", got)
	}
}

func TestSettingsDBPath(t *testing.T) {
	t.Setenv("JARSCOPE_SETTINGS_DB", "/tmp/s.db")
	if got := SettingsDBPath(); got != "/tmp/s.db" {
		t.Errorf("SettingsDBPath() = %q", got)
	}
}
