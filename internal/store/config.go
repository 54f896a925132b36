package store

import (
	"path/filepath"
	"sync"

	"hme/internal/domain"
)

const configFile = "config.json"

type configData struct {
	DefaultAccount string `json:"default_account,omitempty"`
}

// ConfigStore records the default account identifier in config.json under
// the tool home.
type ConfigStore struct {
	dir string
	mu  sync.Mutex
}

func NewConfigStore(dir string) *ConfigStore { return &ConfigStore{dir: dir} }

func (s *ConfigStore) SetAccount(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c configData
	if err := readJSON(s.path(), &c); err != nil {
		return err
	}
	c.DefaultAccount = account
	return writeJSON(s.path(), c, 0o600)
}

func (s *ConfigStore) Account() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c configData
	if err := readJSON(s.path(), &c); err != nil {
		return "", false, err
	}
	if c.DefaultAccount == "" {
		return "", false, nil
	}
	return c.DefaultAccount, true, nil
}

func (s *ConfigStore) ClearAccount() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c configData
	if err := readJSON(s.path(), &c); err != nil {
		return err
	}
	c.DefaultAccount = ""
	return writeJSON(s.path(), c, 0o600)
}

func (s *ConfigStore) path() string { return filepath.Join(s.dir, configFile) }

var _ domain.ConfigStore = (*ConfigStore)(nil)
