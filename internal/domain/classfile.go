package domain

import (
	"errors"
	"strings"
)

// ClassMagic is the 4-byte prefix of every compiled class file
var ClassMagic = [4]byte{0xCA, 0xFE, 0xBA, 0xBE}

// ErrInvalidFormat is returned when a buffer does not start with ClassMagic
var ErrInvalidFormat = errors.New("invalid class file format")

const (
	ClassSuffix   = ".class"
	ArchiveSuffix = ".jar"
	SourceSuffix  = ".java"

	// DefaultClassName is used when a display name has no usable last segment
	DefaultClassName = "DecompiledClass"

	// DefaultDownloadName is used when no original file name is known
	DefaultDownloadName = "decompiled.java"
)

// ValidateClassFile checks the magic bytes of a class file buffer.
// Only the first 4 bytes are inspected.
func ValidateClassFile(buf []byte) error {
	if len(buf) < len(ClassMagic) {
		return ErrInvalidFormat
	}
	for i, b := range ClassMagic {
		if buf[i] != b {
			return ErrInvalidFormat
		}
	}
	return nil
}

// IsClassFile reports whether buf passes ValidateClassFile
func IsClassFile(buf []byte) bool {
	return ValidateClassFile(buf) == nil
}

// ClassName derives a class identifier from a display name such as
// "com/app/Main.class" (-> "Main").
func ClassName(displayName string) string {
	name := displayName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ClassSuffix)
	if name == "" {
		return DefaultClassName
	}
	return name
}

// IsClassMember reports whether an archive entry path names a class file
func IsClassMember(path string) bool {
	return strings.HasSuffix(path, ClassSuffix)
}
