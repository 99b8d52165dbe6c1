package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

// Fixed storage keys, kept from the browser client so a persisted session
// survives the rewrite.
const (
	tokenKey = "d4i_token"
	userKey  = "d4i_user"
)

// Storage persists the {token, user} pair between runs.
type Storage interface {
	// Load returns the persisted session, or ok=false when absent. Corrupted
	// state is cleared and reported as absent, never as an error.
	Load() (token string, user *domain.User, ok bool)
	Save(token string, user *domain.User) error
	Clear() error
}

// FileStorage keeps the two session keys as files in a state directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Load implements Storage.
func (s *FileStorage) Load() (string, *domain.User, bool) {
	rawToken, err := os.ReadFile(s.path(tokenKey))
	if err != nil {
		return "", nil, false
	}
	rawUser, err := os.ReadFile(s.path(userKey))
	if err != nil {
		return "", nil, false
	}

	token := string(rawToken)
	var user domain.User
	if token == "" || json.Unmarshal(rawUser, &user) != nil || user.ID == "" {
		_ = s.Clear()
		return "", nil, false
	}
	return token, &user, true
}

// Save implements Storage.
func (s *FileStorage) Save(token string, user *domain.User) error {
	if token == "" || user == nil {
		return errors.New("session: token and user required")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(tokenKey), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(s.path(userKey), encoded, 0o600)
}

// Clear implements Storage.
func (s *FileStorage) Clear() error {
	errToken := os.Remove(s.path(tokenKey))
	errUser := os.Remove(s.path(userKey))
	for _, err := range []error{errToken, errUser} {
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key)
}
