package admin

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidJSON  = errors.New("invalid JSON")
	ErrNotJSONFile  = errors.New("not a JSON data file")
)

// FileManager gives the admin dashboard raw access to the JSON data files.
// Filenames are reduced to their base name so the manager can never leave the
// data directory.
type FileManager struct {
	dataDir string
}

func NewFileManager(dataDir string) *FileManager {
	return &FileManager{dataDir: dataDir}
}

func (m *FileManager) resolve(name string) (string, error) {
	name = filepath.Base(name)
	if !strings.HasSuffix(name, ".json") {
		return "", ErrNotJSONFile
	}
	return filepath.Join(m.dataDir, name), nil
}

// ListFiles returns the JSON files currently in the data directory.
func (m *FileManager) ListFiles() []string {
	entries, err := os.ReadDir(m.dataDir)
	if err != nil {
		return []string{}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			out = append(out, e.Name())
		}
	}
	return out
}

func (m *FileManager) ReadFile(name string) (json.RawMessage, error) {
	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrFileNotFound
	}
	if !json.Valid(b) {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(b), nil
}

// WriteFile replaces a data file after validating the payload is real JSON.
func (m *FileManager) WriteFile(name string, content []byte) error {
	path, err := m.resolve(name)
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(content, &parsed); err != nil {
		return ErrInvalidJSON
	}
	pretty, err := json.MarshalIndent(parsed, "", "    ")
	if err != nil {
		return ErrInvalidJSON
	}
	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, pretty, 0o644)
}

func (m *FileManager) DeleteFile(name string) error {
	path, err := m.resolve(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return ErrFileNotFound
	}
	return os.Remove(path)
}
