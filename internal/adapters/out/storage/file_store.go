package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hortifruti/internal/pkg/errs"
)

// FileStore is a CredentialStore persisted as a single JSON file.
//
// The whole map is rewritten on every mutation through a temp file and a
// rename, so a crash mid-write never leaves a truncated credential file.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// NewFileStore opens or creates the store at path. A missing file is an
// empty store; a corrupt file is an error so a broken credential file never
// silently authenticates nobody.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	s := &FileStore{
		path:   path,
		values: map[string]string{},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("path", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("path", err)
	}

	return s, nil
}

// Get returns the stored value for key and whether it was present.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.values[key]
	return value, found, nil
}

// Set stores value under key and flushes the store to disk.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

// Delete removes key and flushes the store to disk. Deleting an absent key
// is not an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.values[key]; !found {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	raw, err := json.Marshal(s.values)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
