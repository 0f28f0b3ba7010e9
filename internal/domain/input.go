package domain

import (
	"errors"
	"strings"
)

// InputKind represents the kind of file a user supplied
type InputKind int

const (
	InputUnknown InputKind = iota
	InputArchive           // .jar
	InputClass             // .class
)

func (k InputKind) String() string {
	switch k {
	case InputArchive:
		return "archive"
	case InputClass:
		return "class"
	default:
		return "unknown"
	}
}

// ErrUnsupportedExtension is returned by DetectInputKind for names that are
// neither .jar nor .class
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// DetectInputKind classifies a file by its name suffix. No bytes are read.
func DetectInputKind(name string) (InputKind, error) {
	switch {
	case strings.HasSuffix(name, ArchiveSuffix):
		return InputArchive, nil
	case strings.HasSuffix(name, ClassSuffix):
		return InputClass, nil
	default:
		return InputUnknown, ErrUnsupportedExtension
	}
}

// DownloadName returns the export file name for an input name: the .jar or
// .class extension is replaced with .java.
func DownloadName(name string) string {
	if name == "" {
		return DefaultDownloadName
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	for _, suffix := range []string{ArchiveSuffix, ClassSuffix} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix) + SourceSuffix
		}
	}
	if name == "" {
		return DefaultDownloadName
	}
	return name
}
