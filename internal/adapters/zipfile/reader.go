package zipfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"

	"jarscope/internal/application"
	"jarscope/internal/domain"
)

// Reader implements ports.ArchiveReader. It keeps no state: every call
// re-opens the archive from the given bytes.
type Reader struct{}

// NewReader creates a new archive reader
func NewReader() *Reader {
	return &Reader{}
}

func open(archive []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, &application.ArchiveFormatError{Err: err}
	}
	return zr, nil
}

// ListMembers returns every non-directory .class entry in archive order
func (r *Reader) ListMembers(archive []byte) ([]string, error) {
	zr, err := open(archive)
	if err != nil {
		return nil, err
	}

	var members []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !domain.IsClassMember(f.Name) {
			continue
		}
		members = append(members, f.Name)
	}
	return members, nil
}

// ReadMember returns the decompressed content of the entry at path
func (r *Reader) ReadMember(archive []byte, path string) ([]byte, error) {
	zr, err := open(archive)
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if f.Name != path || f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}
	return nil, &application.MemberNotFoundError{Path: path}
}
