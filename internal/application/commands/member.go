package commands

import (
	"context"

	"jarscope/internal/application"
	"jarscope/internal/ports"
)

// DecompileMemberCommand decompiles one class member of an open archive
type DecompileMemberCommand struct {
	archives ports.ArchiveReader
	Archive  []byte
	Path     string
}

// NewDecompileMemberCommand creates a new DecompileMemberCommand
func NewDecompileMemberCommand(archives ports.ArchiveReader, archive []byte, path string) *DecompileMemberCommand {
	return &DecompileMemberCommand{
		archives: archives,
		Archive:  archive,
		Path:     path,
	}
}

// Validate checks that an archive is open and a member was named
func (c *DecompileMemberCommand) Validate() error {
	if len(c.Archive) == 0 {
		return application.ErrNoArchive
	}
	return application.ValidateRequired("memberPath", c.Path)
}

// Execute reads the member and decompiles it under its full path
func (c *DecompileMemberCommand) Execute(ctx context.Context) (*application.Decompiled, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, err := c.archives.ReadMember(c.Archive, c.Path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewDecompileClassCommand(data, c.Path).Execute(ctx)
}
