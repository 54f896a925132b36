// Package presence implements the local device-presence check that gates
// release of the stored secret.
//
// On macOS (with cgo) the check is a Touch ID prompt through the
// LocalAuthentication framework. Everywhere else the capability reports
// unavailable, which callers treat as non-fatal: they fall back to asking
// for the password instead of reading it from the store.
package presence
