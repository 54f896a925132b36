package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"hme/internal/domain"
)

// SessionStore persists per-account session artifacts as 0600 JSON files.
// Tokens grant remote access while they last, so the files are owner-only,
// but unlike the password they are not worth a passphrase envelope: the
// remote service can revoke them at any time.
type SessionStore struct {
	dir string
	mu  sync.Mutex
}

func NewSessionStore(dir string) *SessionStore { return &SessionStore{dir: dir} }

func (s *SessionStore) SaveSession(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.SavedUTC = time.Now().Unix()
	return writeJSON(s.path(sess.Account), sess, 0o600)
}

func (s *SessionStore) LoadSession(account string) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess domain.Session
	if err := readJSON(s.path(account), &sess); err != nil {
		return domain.Session{}, false, err
	}
	if sess.Account != account {
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

func (s *SessionStore) DeleteSession(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(account))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *SessionStore) path(account string) string {
	// Account identifiers are email addresses; flatten the separators that
	// are unsafe in file names.
	name := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(account)
	return filepath.Join(s.dir, "session_"+name+".json")
}

var _ domain.SessionStore = (*SessionStore)(nil)
