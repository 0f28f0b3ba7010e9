package application

import (
	"context"
	"errors"
)

// Notice is the user-facing form of an outcome: a short title and a
// description. Adapters render it as a status line, tool error or stderr text.
type Notice struct {
	Title       string
	Description string
	IsError     bool
}

func (n Notice) String() string {
	if n.Description == "" {
		return n.Title
	}
	return n.Title + ": " + n.Description
}

// NoticeFor converts any pipeline error into a Notice
func NoticeFor(err error) Notice {
	var (
		extErr    *UnsupportedExtensionError
		memberErr *MemberNotFoundError
		decErr    *DecompileError
		valErr    *ValidationError
	)

	switch {
	case err == nil:
		return Notice{Title: "Done"}

	case errors.As(err, &extErr):
		return Notice{
			Title:       "Unsupported file",
			Description: "Only .jar and .class files are supported",
			IsError:     true,
		}

	case errors.Is(err, ErrEmptyArchive):
		return Notice{
			Title:       "Nothing to show",
			Description: "The archive contains no .class files",
		}

	case errors.Is(err, ErrArchiveFormat):
		return Notice{
			Title:       "Cannot open archive",
			Description: "The file is not a valid JAR/ZIP archive",
			IsError:     true,
		}

	case errors.As(err, &memberErr):
		return Notice{
			Title:       "Cannot load file",
			Description: "Failed to read " + memberErr.Path + " from the archive",
			IsError:     true,
		}

	case errors.Is(err, ErrNoArchive):
		return Notice{
			Title:       "Cannot load file",
			Description: "Open a .jar archive first",
			IsError:     true,
		}

	case errors.As(err, &decErr) && errors.Is(err, ErrInvalidFormat):
		return Notice{
			Title:       "Decompilation failed",
			Description: decErr.Name + " is not a valid class file",
			IsError:     true,
		}

	case errors.As(err, &valErr):
		return Notice{
			Title:       "Invalid input",
			Description: valErr.Message,
			IsError:     true,
		}

	case errors.Is(err, context.Canceled):
		return Notice{Title: "Cancelled"}

	default:
		return Notice{
			Title:       "Error",
			Description: err.Error(),
			IsError:     true,
		}
	}
}
