// Package store provides file-based persistence under the tool home.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Three stores live here:
//   - ConfigStore: the default account identifier (config.json)
//   - SessionStore: per-account session artifacts (session_<account>.json, 0600)
//   - Vault: passphrase-encrypted credential storage for hosts without an
//     OS keychain (vault.enc, scrypt + chacha20poly1305)
package store
