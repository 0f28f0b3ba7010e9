package commands

import (
	"errors"
	"sync"

	"jarscope/internal/application"
	"jarscope/internal/domain"
)

// Mock implementations for testing

func classBytes(body string) []byte {
	return append([]byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x34}, body...)
}

type mockArchiveReader struct {
	members []string
	files   map[string][]byte
	listErr error
	reads   []string
}

func newMockArchiveReader() *mockArchiveReader {
	return &mockArchiveReader{files: make(map[string][]byte)}
}

func (m *mockArchiveReader) add(path string, data []byte) {
	m.members = append(m.members, path)
	m.files[path] = data
}

func (m *mockArchiveReader) ListMembers(archive []byte) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]string(nil), m.members...), nil
}

func (m *mockArchiveReader) ReadMember(archive []byte, path string) ([]byte, error) {
	m.reads = append(m.reads, path)
	data, ok := m.files[path]
	if !ok {
		return nil, &application.MemberNotFoundError{Path: path}
	}
	return data, nil
}

type mockFileSource struct {
	files    map[string][]byte
	written  map[string]string
	writeErr error
	opened   []string
}

func newMockFileSource() *mockFileSource {
	return &mockFileSource{
		files:   make(map[string][]byte),
		written: make(map[string]string),
	}
}

func (m *mockFileSource) ReadInput(path string) ([]byte, error) {
	m.opened = append(m.opened, path)
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (m *mockFileSource) WriteExport(name, content string) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.written[name] = content
	return "/export/" + name, nil
}

type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) WriteText(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

type mockSettingsStore struct {
	saved   *domain.DisplaySettings
	saveErr error
}

func (m *mockSettingsStore) Load() (domain.DisplaySettings, error) {
	if m.saved == nil {
		return domain.DisplaySettings{}, nil
	}
	return *m.saved, nil
}

func (m *mockSettingsStore) Save(s domain.DisplaySettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &s
	return nil
}

func (m *mockSettingsStore) Close() error { return nil }

type mockHistory struct {
	mu      sync.Mutex
	entries []domain.Result
}

func (m *mockHistory) Append(r domain.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]domain.Result{r}, m.entries...)
}

func (m *mockHistory) List() []domain.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Result(nil), m.entries...)
}

func (m *mockHistory) Get(id string) (domain.Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.entries {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Result{}, false
}

func (m *mockHistory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}

func (m *mockHistory) Capacity() int { return 10 }
