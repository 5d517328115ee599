package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Document is the wrapper shape every JSON data file uses: a single key
// holding an array of records, e.g. {"posts":[...]} or {"orders":[...]}.
type Document map[string]json.RawMessage

// LoadDocument reads a JSON data file. A missing file or malformed JSON is
// treated as an empty document so callers can keep going.
func LoadDocument(path string) Document {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}
	}
	doc := Document{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return Document{}
	}
	return doc
}

// SaveDocument writes the document back, creating the data directory when
// needed. The write is a plain whole-file replace, not atomic across
// processes.
func SaveDocument(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// LoadRecords decodes the array stored under key into out (a pointer to a
// slice). Missing keys leave out untouched.
func LoadRecords(path, key string, out any) error {
	doc := LoadDocument(path)
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// SaveRecords re-encodes records under key, preserving any other keys that
// happen to live in the same file.
func SaveRecords(path, key string, records any) error {
	doc := LoadDocument(path)
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	doc[key] = raw
	return SaveDocument(path, doc)
}
