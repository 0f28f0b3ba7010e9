package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"jarscope/internal/application"
	"jarscope/internal/ports"
)

// OpenFileCommand opens a .jar or .class file from disk
type OpenFileCommand struct {
	source   ports.FileSource
	archives ports.ArchiveReader
	Path     string
	Member   string // archive member to decompile instead of the first one
}

// NewOpenFileCommand creates a new OpenFileCommand
func NewOpenFileCommand(source ports.FileSource, archives ports.ArchiveReader, path string) *OpenFileCommand {
	return &OpenFileCommand{
		source:   source,
		archives: archives,
		Path:     path,
	}
}

// Validate checks the file suffix without touching the file
func (c *OpenFileCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	_, err := application.ValidateInputName(filepath.Base(c.Path))
	return err
}

// Execute reads the file and runs the open pipeline on its bytes
func (c *OpenFileCommand) Execute(ctx context.Context) (*application.Opened, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.source.ReadInput(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.Path, err)
	}

	open := NewOpenBytesCommand(c.archives, filepath.Base(c.Path), data)
	open.Member = c.Member
	return open.Execute(ctx)
}

// OpenBytesCommand runs the open pipeline on an in-memory file. Archives get
// a path tree and their first class member decompiled; class files are
// decompiled directly.
type OpenBytesCommand struct {
	archives ports.ArchiveReader
	Name     string
	Data     []byte
	Member   string
}

// NewOpenBytesCommand creates a new OpenBytesCommand
func NewOpenBytesCommand(archives ports.ArchiveReader, name string, data []byte) *OpenBytesCommand {
	return &OpenBytesCommand{
		archives: archives,
		Name:     name,
		Data:     data,
	}
}

// Validate checks the name suffix and that a member is only requested for
// archives
func (c *OpenBytesCommand) Validate() error {
	kind, err := application.ValidateInputName(c.Name)
	if err != nil {
		return err
	}
	if c.Member != "" && kind != application.InputArchive {
		return &application.ValidationError{
			Field:   "memberPath",
			Message: fmt.Sprintf("%s is not an archive", c.Name),
		}
	}
	return nil
}

// Execute dispatches on the input kind
func (c *OpenBytesCommand) Execute(ctx context.Context) (*application.Opened, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	kind, _ := application.ValidateInputName(c.Name)
	switch kind {
	case application.InputClass:
		out, err := NewDecompileClassCommand(c.Data, c.Name).Execute(ctx)
		if err != nil {
			return nil, err
		}
		return &application.Opened{
			Name:   c.Name,
			Kind:   kind,
			Output: out,
		}, nil

	case application.InputArchive:
		return c.openArchive(ctx)

	default:
		return nil, &application.UnsupportedExtensionError{Name: c.Name}
	}
}

func (c *OpenBytesCommand) openArchive(ctx context.Context) (*application.Opened, error) {
	members, err := c.archives.ListMembers(c.Data)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%s: %w", c.Name, application.ErrEmptyArchive)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected := members[0]
	if c.Member != "" {
		selected = c.Member
	}
	out, err := NewDecompileMemberCommand(c.archives, c.Data, selected).Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &application.Opened{
		Name:     c.Name,
		Kind:     application.InputArchive,
		Archive:  c.Data,
		Members:  members,
		Tree:     application.BuildPathTree(members),
		Selected: selected,
		Output:   out,
	}, nil
}
