package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"jarscope/internal/adapters/clipboard"
	"jarscope/internal/adapters/editor"
	"jarscope/internal/adapters/filesystem"
	"jarscope/internal/adapters/memory"
	"jarscope/internal/adapters/sqlite"
	"jarscope/internal/adapters/tui"
	"jarscope/internal/adapters/zipfile"
	"jarscope/internal/application"
	"jarscope/internal/config"
	"jarscope/internal/ports"
)

func main() {
	exportDir := flag.String("export-dir", config.ExportDir(), "directory for exported .java files")
	historySize := flag.Int("history-size", config.HistorySize(), "number of results kept in history")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jarscope [flags] [file.jar|file.class]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Initialize adapters
	var settings ports.SettingsStore
	store, err := sqlite.OpenSettingsStore(config.SettingsDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings will not be saved: %v\n", err)
		settings = memory.NewSettings()
	} else {
		settings = store
	}
	defer settings.Close()

	history, err := memory.NewHistory(config.ClampHistorySize(*historySize))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := application.NewSession(history)
	if saved, err := settings.Load(); err == nil {
		session.SetSettings(saved)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: using default settings: %v\n", err)
	}

	// Create and run TUI app
	app := tui.NewApp(context.Background(), tui.Deps{
		Session:   session,
		Source:    filesystem.NewSource(*exportDir),
		Archives:  zipfile.NewReader(),
		Clipboard: clipboard.NewSystem(),
		Settings:  settings,
		Editor:    editor.NewOpener(),
	}, history.Capacity(), flag.Arg(0))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
