package application

import (
	"errors"
	"fmt"

	"jarscope/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound             = errors.New("not found")
	ErrUnsupportedExtension = domain.ErrUnsupportedExtension
	ErrInvalidFormat        = domain.ErrInvalidFormat
	ErrArchiveFormat        = errors.New("invalid archive")
	ErrEmptyArchive         = errors.New("archive contains no class files")
	ErrMemberNotFound       = errors.New("member not found")
	ErrNoArchive            = errors.New("no archive is open")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// UnsupportedExtensionError is returned for inputs that are neither .jar nor .class
type UnsupportedExtensionError struct {
	Name string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("unsupported file %s: only .jar and .class files are supported", e.Name)
}

func (e *UnsupportedExtensionError) Is(target error) bool {
	return target == ErrUnsupportedExtension
}

// ArchiveFormatError wraps the error returned while opening an archive
type ArchiveFormatError struct {
	Err error
}

func (e *ArchiveFormatError) Error() string {
	return fmt.Sprintf("cannot open archive: %v", e.Err)
}

func (e *ArchiveFormatError) Is(target error) bool {
	return target == ErrArchiveFormat
}

func (e *ArchiveFormatError) Unwrap() error {
	return e.Err
}

// MemberNotFoundError names an archive path that did not resolve
type MemberNotFoundError struct {
	Path string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("member %s not found in archive", e.Path)
}

func (e *MemberNotFoundError) Is(target error) bool {
	return target == ErrMemberNotFound
}

// DecompileError is returned when a buffer could not be decompiled
type DecompileError struct {
	Name  string
	Cause error
}

func (e *DecompileError) Error() string {
	return fmt.Sprintf("cannot decompile %s: %v", e.Name, e.Cause)
}

func (e *DecompileError) Unwrap() error {
	return e.Cause
}
