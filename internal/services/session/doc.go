// Package session manages the credential and session lifecycle.
//
// Authenticate produces a usable remote session for a command: it loads the
// configured account, tries a silent resume from stored session artifacts,
// and only when that fails releases the stored secret to perform a full
// login. Secret release is gated by the local presence check, with an
// interactive password prompt as the fallback. A demanded second factor is
// verified exactly once; a second rejection is fatal.
//
// Enroll performs first-time setup (store secret, record the account, prove
// the credentials with a full login) and rolls everything back when the
// proof fails. Logout destroys the secret, session artifacts, and account
// record.
package session
