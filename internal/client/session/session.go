// Package session persists the logged in user between client invocations.
// There is no refresh or expiry; a session lives until it is cleared.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akademik/akademik/internal/app/models"
)

// ErrNoSession is returned by Load when nobody is logged in
var ErrNoSession = errors.New("no active session")

// Session is the stored login
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token,omitempty"`
}

// Store loads and saves the session
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is the session file under the user configuration directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "akademik", "session.json"), nil
}

// Path returns the session file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored session
func (s *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if sess.User.UserID == 0 {
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Save writes the session, readable only by the current user
func (s *FileStore) Save(sess *Session) error {
	if sess == nil {
		return s.Clear()
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the stored session
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
