package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	apperrors "github.com/poscatcafe/pos-terminal/internal/errors"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

// The terminal persists exactly two things across restarts: the session token
// and the cached user profile. Losing either forces re-authentication.
const (
	tokenFile = "session_token"
	userFile  = "current_user.json"
)

// Store is the file-backed credential store. It caches both values in memory
// and implements api.TokenProvider.
type Store struct {
	dir string

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewStore(dir string) (*Store, error) {

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, apperrors.ValidationError("Failed to create session state directory").WithError(err)
	}

	s := &Store{dir: dir}
	s.load()

	return s, nil
}

func (s *Store) load() {

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return
	}

	userData, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return
	}

	s.token = token
	s.user = &user
}

// Token implements api.TokenProvider.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}

	u := *s.user

	return &u
}

// HasCredentials reports whether both stored keys are present. Absence of
// either means unauthenticated, no server round trip needed.
func (s *Store) HasCredentials() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != "" && s.user != nil
}

func (s *Store) Save(token string, user models.User) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	userData, err := json.Marshal(user)
	if err != nil {
		return apperrors.ValidationError("Failed to encode user profile").WithError(err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return apperrors.ValidationError("Failed to persist session token").WithError(err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, userFile), userData, 0o600); err != nil {
		return apperrors.ValidationError("Failed to persist user profile").WithError(err)
	}

	s.token = token
	s.user = &user

	return nil
}

// Clear wipes both keys, in memory and on disk.
func (s *Store) Clear() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	for _, name := range []string{tokenFile, userFile} {
		_ = os.Remove(filepath.Join(s.dir, name))
	}
}
