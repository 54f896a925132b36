package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hme/internal/domain"
)

const vaultFile = "vault.enc"

// Vault is the credential store for hosts without an OS keychain: a single
// encrypted file mapping account identifiers to secrets. The passphrase is
// obtained lazily through passphraseFn, so it is only ever requested when a
// command actually needs to open the vault.
type Vault struct {
	dir          string
	passphraseFn func() (string, error)

	mu sync.Mutex
	// passphrase cached for the lifetime of the process after first use;
	// one invocation never prompts twice.
	passphrase string
	unlocked   bool
}

func NewVault(dir string, passphraseFn func() (string, error)) *Vault {
	return &Vault{dir: dir, passphraseFn: passphraseFn}
}

func (v *Vault) SaveSecret(account, secret string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	m, pass, err := v.open()
	if err != nil {
		return err
	}
	m[account] = secret
	return v.write(m, pass)
}

func (v *Vault) LoadSecret(account string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	m, _, err := v.open()
	if err != nil {
		return "", err
	}
	secret, ok := m[account]
	if !ok {
		return "", domain.ErrCredentialsNotFound
	}
	return secret, nil
}

func (v *Vault) DeleteSecret(account string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	m, pass, err := v.open()
	if err != nil {
		return err
	}
	if _, ok := m[account]; !ok {
		return domain.ErrCredentialsNotFound
	}
	delete(m, account)
	if len(m) == 0 {
		err := os.Remove(v.path())
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return v.write(m, pass)
}

// HasSecret checks entry existence. It must not prompt, so with a locked
// vault it only reports whether the vault file exists at all.
func (v *Vault) HasSecret(account string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unlocked {
		m, _, err := v.open()
		if err != nil {
			return false
		}
		_, ok := m[account]
		return ok
	}
	_, err := os.Stat(v.path())
	return err == nil
}

// open reads and decrypts the vault, prompting for the passphrase on first
// use. A missing file yields an empty map. Caller holds v.mu.
func (v *Vault) open() (map[string]string, string, error) {
	pass, err := v.unlock()
	if err != nil {
		return nil, "", err
	}

	raw, err := os.ReadFile(v.path())
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, pass, nil
	}
	if err != nil {
		return nil, "", err
	}

	plain, err := decrypt(pass, raw)
	if err != nil {
		return nil, "", err
	}
	m := map[string]string{}
	if err := json.Unmarshal(plain, &m); err != nil {
		return nil, "", err
	}
	return m, pass, nil
}

func (v *Vault) write(m map[string]string, pass string) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(pass, raw, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(v.path(), sealed, 0o600)
}

func (v *Vault) unlock() (string, error) {
	if v.unlocked {
		return v.passphrase, nil
	}
	pass, err := v.passphraseFn()
	if err != nil {
		return "", fmt.Errorf("vault passphrase: %w", err)
	}
	v.passphrase = pass
	v.unlocked = true
	return pass, nil
}

func (v *Vault) path() string { return filepath.Join(v.dir, vaultFile) }

var _ domain.CredentialStore = (*Vault)(nil)
