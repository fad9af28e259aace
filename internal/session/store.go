// Package session persists the bearer token between launches. The token is
// the only durable client state: one opaque string in one file.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Store is the durable home of the session token. An empty token means no
// session is stored.
type Store interface {
	Token() string
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single file created with owner-only
// permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore persisting to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Token returns the stored token, or "" when none is stored or the file
// cannot be read.
func (f *FileStore) Token() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes the token, creating the parent directory if needed.
func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

// Clear removes the stored token. Clearing an already-empty store is not an
// error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
