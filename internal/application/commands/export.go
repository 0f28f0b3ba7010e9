package commands

import (
	"fmt"

	"jarscope/internal/application"
	"jarscope/internal/ports"
)

// ExportCommand writes the current result as a .java file
type ExportCommand struct {
	source   ports.FileSource
	Result   *application.Result
	Settings application.DisplaySettings
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(source ports.FileSource, result *application.Result, settings application.DisplaySettings) *ExportCommand {
	return &ExportCommand{
		source:   source,
		Result:   result,
		Settings: settings,
	}
}

// Validate checks that there is something to export
func (c *ExportCommand) Validate() error {
	if c.Result == nil {
		return &application.ValidationError{
			Field:   "result",
			Message: "nothing has been decompiled yet",
		}
	}
	return nil
}

// Execute writes the file and returns its full path
func (c *ExportCommand) Execute() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	name := application.DownloadName(c.Result.FileName)
	path, err := c.source.WriteExport(name, c.Settings.FormatForExport(c.Result.Code))
	if err != nil {
		return "", fmt.Errorf("failed to export %s: %w", name, err)
	}
	return path, nil
}

// CopyCommand places the current result on the clipboard
type CopyCommand struct {
	clipboard ports.Clipboard
	Result    *application.Result
	Settings  application.DisplaySettings
}

// NewCopyCommand creates a new CopyCommand
func NewCopyCommand(clipboard ports.Clipboard, result *application.Result, settings application.DisplaySettings) *CopyCommand {
	return &CopyCommand{
		clipboard: clipboard,
		Result:    result,
		Settings:  settings,
	}
}

// Validate checks that there is something to copy
func (c *CopyCommand) Validate() error {
	if c.Result == nil {
		return &application.ValidationError{
			Field:   "result",
			Message: "nothing has been decompiled yet",
		}
	}
	return nil
}

// Execute writes the formatted code to the clipboard
func (c *CopyCommand) Execute() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.clipboard.WriteText(c.Settings.FormatForExport(c.Result.Code)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
