// Package session provides the durable session slot for invctl: the bearer
// credential and the identity snapshot taken at login, stored together.
//
// The pair survives process restarts. A stored pair with either half missing
// or unparsable is treated as no session at all and the remaining half is
// eagerly cleared, so a half-valid session is never surfaced.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/invops/invctl/pkg/roles"
)

const (
	// DefaultConfigDir is the directory for invctl configuration, under the
	// user config root.
	DefaultConfigDir = "invctl"
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.json"
	// FilePermissions for config files (owner read/write only).
	FilePermissions = 0600
	// DirPermissions for config directories.
	DirPermissions = 0700
)

// ErrNotLoggedIn indicates no valid session exists.
var ErrNotLoggedIn = errors.New("not logged in - run 'invctl login' first")

// Identity is the authenticated user's profile snapshot taken at login.
// It is immutable from the client's perspective: a role change made
// elsewhere does not update an existing session until re-login.
type Identity struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  roles.Role `json:"role"`
}

// UnmarshalJSON accepts both "id" and Mongo-style "_id" for the identifier.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string     `json:"id"`
		MongoID string     `json:"_id"`
		Name    string     `json:"name"`
		Email   string     `json:"email"`
		Role    roles.Role `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.ID = raw.ID
	if i.ID == "" {
		i.ID = raw.MongoID
	}
	i.Name = raw.Name
	i.Email = raw.Email
	i.Role = raw.Role
	return nil
}

// Session is the paired credential and identity held while authenticated.
type Session struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// config is the on-disk layout. The server URL is connection configuration,
// not session state: Clear keeps it so re-login works without --server.
type config struct {
	ServerURL string          `json:"server_url,omitempty"`
	Token     string          `json:"token,omitempty"`
	User      json.RawMessage `json:"user,omitempty"`
}

// Store manages the single process-wide session slot.
//
// Writes are serialized by a mutex so concurrent clear triggers (several
// in-flight requests all hitting 401) are safe; Clear is idempotent.
type Store struct {
	mu         sync.Mutex
	configPath string
	cfg        *config
}

// NewStore loads the session store from disk. A missing or unparsable
// config file yields an empty store, not an error.
func NewStore() (*Store, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(path)
}

// NewStoreAt loads a session store backed by an explicit file path.
func NewStoreAt(path string) (*Store, error) {
	s := &Store{configPath: path, cfg: &config{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Corrupt config: start from an empty slot rather than locking the
		// user out of login.
		return s, nil
	}
	s.cfg = &cfg
	return s, nil
}

// configPath returns the path to the config file, honoring XDG_CONFIG_HOME.
func configPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, DefaultConfigDir, ConfigFileName), nil
}

// save writes the config to disk.
func (s *Store) save() error {
	dir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.configPath, data, FilePermissions)
}

// Set stores a new session pair, replacing any existing one.
func (s *Store) Set(token string, user Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.cfg.Token = token
	s.cfg.User = userData
	return s.save()
}

// Get returns the current session, or false when none exists. A pair with a
// missing or unparsable half is cleared on the spot and reported as absent.
func (s *Store) Get() (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.currentLocked()
	if !ok && (s.cfg.Token != "" || len(s.cfg.User) > 0) {
		s.clearLocked()
	}
	return sess, ok
}

// currentLocked validates the stored pair. Callers must hold s.mu.
func (s *Store) currentLocked() (*Session, bool) {
	if s.cfg.Token == "" || len(s.cfg.User) == 0 {
		return nil, false
	}

	var user Identity
	if err := json.Unmarshal(s.cfg.User, &user); err != nil {
		return nil, false
	}
	if user.ID == "" || !user.Role.Valid() {
		return nil, false
	}
	return &Session{Token: s.cfg.Token, User: user}, true
}

// Token returns the current credential if a valid session exists.
func (s *Store) Token() (string, bool) {
	sess, ok := s.Get()
	if !ok {
		return "", false
	}
	return sess.Token, true
}

// Clear removes the session pair. It is idempotent: clearing an already
// empty store is a no-op and does not touch the file.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// clearLocked drops token and identity, keeping the server URL. Callers
// must hold s.mu.
func (s *Store) clearLocked() {
	if s.cfg.Token == "" && len(s.cfg.User) == 0 {
		return
	}
	s.cfg.Token = ""
	s.cfg.User = nil
	// Best effort: an unwritable config dir should not block logout.
	_ = s.save()
}

// ServerURL returns the configured server URL.
func (s *Store) ServerURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.ServerURL
}

// SetServerURL stores the server URL.
func (s *Store) SetServerURL(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.ServerURL = url
	return s.save()
}

// ConfigPath returns the path to the backing config file.
func (s *Store) ConfigPath() string {
	return s.configPath
}
