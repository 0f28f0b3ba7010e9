package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jarscope/internal/adapters/tui/styles"
	"jarscope/internal/application"
)

// HistoryKeyMap defines key bindings for the history view
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Load  key.Binding
	Clear key.Binding
}

var HistoryKeys = HistoryKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Load: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "load"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear history"),
	),
}

// HistoryModel lists past results, newest first
type HistoryModel struct {
	ViewState

	entries  []application.Result
	capacity int
	current  string
	window   *ListWindow
	confirm  Confirmation
}

// NewHistoryModel creates a history view for a history of the given capacity
func NewHistoryModel(capacity int) *HistoryModel {
	return &HistoryModel{
		capacity: capacity,
		window:   NewListWindow(10),
		confirm:  NewConfirmation("Clear all history?"),
	}
}

// Capturing reports whether a question is waiting for an answer
func (m *HistoryModel) Capturing() bool {
	return m.confirm.Active
}

// SetEntries replaces the listed results. currentID marks the result shown
// in the decompiler.
func (m *HistoryModel) SetEntries(entries []application.Result, currentID string) {
	m.entries = entries
	m.current = currentID
	m.window.SetTotal(len(entries))
}

// SetSize updates the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.window.SetHeight(max(height-8, 1))
}

// Init implements tea.Model
func (m *HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if handled, confirmed := m.confirm.HandleKey(keyMsg); handled {
		if confirmed {
			return m, emit(ClearHistoryMsg{})
		}
		return m, nil
	}
	m.ClearNotice()

	switch {
	case key.Matches(keyMsg, HistoryKeys.Up):
		m.window.Up()
	case key.Matches(keyMsg, HistoryKeys.Down):
		m.window.Down()
	case key.Matches(keyMsg, HistoryKeys.Load):
		if c := m.window.Cursor(); c < len(m.entries) {
			return m, emit(LoadHistoryMsg{ID: m.entries[c].ID})
		}
	case key.Matches(keyMsg, HistoryKeys.Clear):
		if len(m.entries) > 0 {
			m.confirm.Ask()
		}
	}
	return m, nil
}

// View renders the history view
func (m *HistoryModel) View() string {
	v := NewViewBuilder()
	v.Muted(fmt.Sprintf("%d of %d results kept for this session", len(m.entries), m.capacity))
	v.BlankLine()

	if len(m.entries) == 0 {
		v.Muted("No results yet. Open a .jar or .class file first.")
	}

	start, end := m.window.Range()
	for i := start; i < end; i++ {
		v.Line(m.renderEntry(m.entries[i], i == m.window.Cursor()))
	}
	v.BlankLine()

	if q := m.confirm.View(); q != "" {
		v.Line(q)
		return v.String()
	}
	v.Notice(&m.ViewState)
	return v.Help(HistoryKeys.Up, HistoryKeys.Down, HistoryKeys.Load, HistoryKeys.Clear).String()
}

func (m *HistoryModel) renderEntry(r application.Result, atCursor bool) string {
	marker := "  "
	if r.ID == m.current {
		marker = "● "
	}
	text := fmt.Sprintf("%s  %-40s  %9s", r.Timestamp.Format("15:04:05"), truncate(r.FileName, 40), r.SizeLabel)
	if atCursor {
		return styles.NodeCurrent.Render(marker) + styles.NodeSelected.Render(text)
	}
	return styles.NodeCurrent.Render(marker) + text
}
