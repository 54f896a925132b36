//go:build darwin

package keychain

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"hme/internal/domain"
)

const securityBin = "/usr/bin/security"

// Store manages generic-password entries in the user's login keychain.
type Store struct {
	service string
}

// Supported reports whether the OS keychain is usable on this host.
func Supported() bool {
	_, err := exec.LookPath(securityBin)
	return err == nil
}

func New(service string) *Store { return &Store{service: service} }

func (s *Store) SaveSecret(account, secret string) error {
	// Drop any existing entry first; -U alone does not replace an entry
	// created with different attributes.
	_ = exec.Command(securityBin, "delete-generic-password",
		"-s", s.service, "-a", account).Run()

	out, err := exec.Command(securityBin, "add-generic-password",
		"-s", s.service, "-a", account, "-w", secret, "-U").CombinedOutput()
	if err != nil {
		return fmt.Errorf("keychain add: %s", firstLine(out, err))
	}
	return nil
}

func (s *Store) LoadSecret(account string) (string, error) {
	out, err := exec.Command(securityBin, "find-generic-password",
		"-s", s.service, "-a", account, "-w").Output()
	if err != nil {
		if notFound(err) {
			return "", domain.ErrCredentialsNotFound
		}
		return "", fmt.Errorf("keychain find: %s", firstLine(nil, err))
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (s *Store) DeleteSecret(account string) error {
	out, err := exec.Command(securityBin, "delete-generic-password",
		"-s", s.service, "-a", account).CombinedOutput()
	if err != nil {
		if notFound(err) {
			return domain.ErrCredentialsNotFound
		}
		return fmt.Errorf("keychain delete: %s", firstLine(out, err))
	}
	return nil
}

func (s *Store) HasSecret(account string) bool {
	// No -w: the item's presence is checked without releasing the secret,
	// so no keychain unlock or biometric prompt fires.
	err := exec.Command(securityBin, "find-generic-password",
		"-s", s.service, "-a", account).Run()
	return err == nil
}

// notFound matches the security(1) "could not be found" exit path
// (errSecItemNotFound, exit status 44).
func notFound(err error) bool {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() == 44 {
			return true
		}
		return strings.Contains(string(exitErr.Stderr), "could not be found")
	}
	return false
}

// firstLine picks the most useful diagnostic from command output or the
// exec error itself.
func firstLine(out []byte, err error) string {
	if line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n"); line != "" {
		return line
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if line, _, _ := strings.Cut(strings.TrimSpace(string(exitErr.Stderr)), "\n"); line != "" {
			return line
		}
	}
	return err.Error()
}

var _ domain.CredentialStore = (*Store)(nil)
