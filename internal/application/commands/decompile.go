package commands

import (
	"context"

	"jarscope/internal/application"
	"jarscope/internal/domain"
)

// DecompileClassCommand turns one class file buffer into pseudo-source
type DecompileClassCommand struct {
	Data        []byte
	DisplayName string
}

// NewDecompileClassCommand creates a new DecompileClassCommand
func NewDecompileClassCommand(data []byte, displayName string) *DecompileClassCommand {
	return &DecompileClassCommand{
		Data:        data,
		DisplayName: displayName,
	}
}

// Validate checks the class file magic number
func (c *DecompileClassCommand) Validate() error {
	if err := domain.ValidateClassFile(c.Data); err != nil {
		return &application.DecompileError{Name: c.DisplayName, Cause: err}
	}
	return nil
}

// Execute produces the pseudo-source. The buffer is never modified.
func (c *DecompileClassCommand) Execute(ctx context.Context) (*application.Decompiled, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &application.Decompiled{
		FileName: c.DisplayName,
		Code:     domain.Decompile(c.Data, c.DisplayName),
		Size:     len(c.Data),
	}, nil
}
