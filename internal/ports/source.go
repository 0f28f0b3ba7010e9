package ports

// FileSource reads user supplied input files and writes exported sources
type FileSource interface {
	// ReadInput checks the name suffix, then reads the whole file.
	// Unsupported suffixes are rejected before the file is opened.
	ReadInput(path string) ([]byte, error)

	// WriteExport writes content under name into the export directory and
	// returns the full path written
	WriteExport(name, content string) (string, error)
}
