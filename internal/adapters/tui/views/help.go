package views

import (
	"strings"

	"jarscope/internal/adapters/tui/styles"
)

// HelpModel is the model for the help tab
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-4 / tab", "Switch tab"))
	b.WriteString(helpLine("?", "Show this help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Decompiler"))
	b.WriteString("\n")
	b.WriteString(helpLine("o", "Open a .jar or .class file"))
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move in the archive tree"))
	b.WriteString(helpLine("h / l / ← / →", "Collapse / expand a package"))
	b.WriteString(helpLine("Enter", "Toggle package or decompile class"))
	b.WriteString(helpLine("Ctrl+D / Ctrl+U", "Scroll code"))
	b.WriteString(helpLine("c", "Copy code to clipboard"))
	b.WriteString(helpLine("s", "Save as .java"))
	b.WriteString(helpLine("e", "Save as .java and open in $EDITOR"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("History & Settings"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Load result / toggle setting"))
	b.WriteString(helpLine("x", "Clear history"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("About the output"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  The code is a skeleton built from markers found in the class bytes:"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  entry points, constructors, \"Method x\" and \"Field x\" strings."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  It is not a real bytecode decompilation."))
	b.WriteString("\n")

	return b.String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
