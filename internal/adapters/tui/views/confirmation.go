package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jarscope/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// Confirmation is an inline yes/no question
type Confirmation struct {
	Question string
	Active   bool
	Keys     ConfirmKeyMap
}

// NewConfirmation creates an inactive confirmation for question
func NewConfirmation(question string) Confirmation {
	return Confirmation{
		Question: question,
		Keys:     DefaultConfirmKeys,
	}
}

// Ask activates the question
func (c *Confirmation) Ask() {
	c.Active = true
}

// HandleKey resolves an active question. handled is true when the key
// answered it; confirmed tells which way. Other keys are swallowed while
// the question is active.
func (c *Confirmation) HandleKey(msg tea.KeyMsg) (handled, confirmed bool) {
	if !c.Active {
		return false, false
	}
	switch {
	case key.Matches(msg, c.Keys.Confirm):
		c.Active = false
		return true, true
	case key.Matches(msg, c.Keys.Cancel):
		c.Active = false
		return true, false
	}
	return true, false
}

// View renders the question with its key hints
func (c *Confirmation) View() string {
	if !c.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString(c.Question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
