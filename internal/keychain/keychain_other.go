//go:build !darwin

package keychain

import "hme/internal/domain"

// Supported reports whether the OS keychain is usable on this host.
func Supported() bool { return false }

// New is never called on non-darwin hosts; it exists so callers can be
// written without build tags of their own.
func New(service string) domain.CredentialStore { return nil }
