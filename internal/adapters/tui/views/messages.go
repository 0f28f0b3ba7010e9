package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"jarscope/internal/application"
)

// Requests emitted by views and handled by the App

type OpenPathMsg struct {
	Path string
}

type SelectMemberMsg struct {
	Path string
}

type CopyMsg struct{}

type ExportMsg struct {
	Edit bool // open the exported file in $EDITOR afterwards
}

type LoadHistoryMsg struct {
	ID string
}

type ClearHistoryMsg struct{}

type ToggleSettingMsg struct {
	Key application.SettingKey
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
