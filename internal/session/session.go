package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Version is the version of the session file format.
const Version = 1

const fileName = "session.json"

// Session holds the locally persisted admin session: the bearer token written
// by the login flow and the locale used to parameterize list endpoints.
type Session struct {
	Version   int       `json:"version"`
	AuthToken string    `json:"authToken"`
	Locale    string    `json:"i18nextLng"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a new session.
func New(token, locale string) *Session {
	return &Session{
		Version:   Version,
		AuthToken: token,
		Locale:    locale,
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}
}

// Store reads and writes the session file under a fixed directory.
// The token is read from disk on every call, never cached, so a token
// refreshed by a concurrent login is picked up on the next request.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the session from disk. A missing file is not an error; it
// returns a nil session.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	sess.CreatedAt = sess.CreatedAt.Truncate(time.Millisecond)

	return &sess, nil
}

// Save writes the session to disk.
func (s *Store) Save(sess *Session) error {
	slog.Debug("saving session", "locale", sess.Locale, "token", "[REDACTED]")

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return os.WriteFile(s.path(), data, 0600)
}

// Clear removes the session file. Called on logout and whenever the backend
// answers 401; the wipe is wholesale, there is no partial update.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token returns the stored bearer token, or the empty string when no session
// exists. Errors reading the file are logged and treated as "no session".
func (s *Store) Token() string {
	sess, err := s.Load()
	if err != nil {
		slog.Warn("unable to load session", "error", err)
		return ""
	}
	if sess == nil {
		return ""
	}
	return sess.AuthToken
}

// Language returns the upper-cased two-letter locale for list endpoints.
// Defaults to EN when no session or locale is stored.
func (s *Store) Language() string {
	sess, err := s.Load()
	if err != nil || sess == nil || sess.Locale == "" {
		return "EN"
	}
	return strings.ToUpper(sess.Locale)
}
