package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jarscope/internal/adapters/tui/styles"
	"jarscope/internal/application"
)

// SettingsKeyMap defines key bindings for the settings view
type SettingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

var SettingsKeys = SettingsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
}

// SettingsModel shows the display settings as toggles
type SettingsModel struct {
	ViewState

	settings application.DisplaySettings
	cursor   int
}

// NewSettingsModel creates a new settings view
func NewSettingsModel() *SettingsModel {
	return &SettingsModel{}
}

// SetSettings updates the shown values
func (m *SettingsModel) SetSettings(s application.DisplaySettings) {
	m.settings = s
}

// Init implements tea.Model
func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.ClearNotice()

	switch {
	case key.Matches(keyMsg, SettingsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, SettingsKeys.Down):
		if m.cursor < len(application.SettingKeys)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, SettingsKeys.Toggle):
		return m, emit(ToggleSettingMsg{Key: application.SettingKeys[m.cursor]})
	}
	return m, nil
}

// View renders the settings view
func (m *SettingsModel) View() string {
	v := NewViewBuilder()
	v.Muted("Settings change how code is shown, never what is detected.")
	v.BlankLine()

	for i, k := range application.SettingKeys {
		check := styles.CheckOff.String()
		if m.settings.Get(k) {
			check = styles.CheckOn.String()
		}
		label := k.Label()
		if i == m.cursor {
			label = styles.NodeSelected.Render(label)
		}
		v.Line(check + " " + label)
		v.Line("    " + styles.MutedText.Render(k.Description()))
	}
	v.BlankLine()

	v.Notice(&m.ViewState)
	return v.Help(SettingsKeys.Up, SettingsKeys.Down, SettingsKeys.Toggle).String()
}
