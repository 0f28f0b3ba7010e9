package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jarscope/internal/adapters/tui/styles"
)

// PromptKeyMap defines key bindings for the path prompt
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var PromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PathPrompt is a single-line file path input
type PathPrompt struct {
	Label string
	Input textinput.Model
	Keys  PromptKeyMap
}

// NewPathPrompt creates a prompt with the given label and placeholder
func NewPathPrompt(label, placeholder string) *PathPrompt {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 4096
	return &PathPrompt{
		Label: label,
		Input: input,
		Keys:  PromptKeys,
	}
}

// Focus starts capturing key presses
func (p *PathPrompt) Focus() tea.Cmd {
	p.Input.Focus()
	return textinput.Blink
}

// Blur stops capturing key presses
func (p *PathPrompt) Blur() {
	p.Input.Blur()
}

// Focused reports whether the prompt captures key presses
func (p *PathPrompt) Focused() bool {
	return p.Input.Focused()
}

// Value returns the trimmed input
func (p *PathPrompt) Value() string {
	return strings.TrimSpace(p.Input.Value())
}

// Update forwards msg to the text input. submitted is true when enter was
// pressed with a non-empty value; cancelled when esc was pressed.
func (p *PathPrompt) Update(msg tea.Msg) (submitted, cancelled bool, cmd tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.Keys.Submit):
			return p.Value() != "", false, nil
		case key.Matches(msg, p.Keys.Cancel):
			return false, true, nil
		}
	}

	p.Input, cmd = p.Input.Update(msg)
	return false, false, cmd
}

// View renders the label and the bordered input
func (p *PathPrompt) View() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(p.Label))
	b.WriteString("\n")
	if p.Focused() {
		b.WriteString(styles.InputFocused.Render(p.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(p.Input.View()))
	}
	return b.String()
}
