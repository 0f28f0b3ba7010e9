package ports

import "os/exec"

// EditorOpener opens an exported .java file in the user's editor
type EditorOpener interface {
	OpenFile(path string) error

	// Command builds the editor process without starting it, so the TUI can
	// hand the terminal over with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
