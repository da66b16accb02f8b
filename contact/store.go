package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	jsonFileName = "messages.json"
	textFileName = "messages.txt"
)

// Store persists messages
type Store interface {
	Append(m Message) error
	List() ([]Message, error)
}

// FileStore keeps every message in a pretty-printed JSON array plus a readable text log
// Writes are serialized so concurrent requests cannot drop each other's entries
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// JSONPath returns the path of the JSON array file
func (s *FileStore) JSONPath() string {
	return filepath.Join(s.dir, jsonFileName)
}

// TextPath returns the path of the readable log
func (s *FileStore) TextPath() string {
	return filepath.Join(s.dir, textFileName)
}

// Append adds m to both files
func (s *FileStore) Append(m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load()
	if err != nil {
		return err
	}
	messages = append(messages, m)

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	if err := writeFileAtomic(s.JSONPath(), data); err != nil {
		return err
	}

	f, err := os.OpenFile(s.TextPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open text log: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(m.TextBlock()); err != nil {
		return fmt.Errorf("append text log: %w", err)
	}
	return nil
}

// List returns all stored messages, empty when nothing has been stored yet
func (s *FileStore) List() ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]Message, error) {
	data, err := os.ReadFile(s.JSONPath())
	if errors.Is(err, fs.ErrNotExist) {
		return []Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	messages := []Message{}
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

// writeFileAtomic replaces path via a temp file rename
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".messages-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace messages: %w", err)
	}
	return nil
}
