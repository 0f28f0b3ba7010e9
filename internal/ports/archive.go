package ports

// ArchiveReader reads class files out of an in-memory archive.
// Implementations re-open the archive on every call and keep no state.
type ArchiveReader interface {
	// ListMembers returns the path of every .class entry in archive order.
	// Bytes that cannot be opened as an archive yield an ArchiveFormatError.
	ListMembers(archive []byte) ([]string, error)

	// ReadMember returns the full content of one entry.
	// A path absent from the archive yields ErrMemberNotFound.
	ReadMember(archive []byte, path string) ([]byte, error)
}
