package domain

import "errors"

var (
	// ErrNotConfigured means no account has been set up yet.
	ErrNotConfigured = errors.New("no account configured")

	// ErrCredentialsNotFound means the secure store has no secret for the
	// configured account.
	ErrCredentialsNotFound = errors.New("no stored credentials")

	// ErrAuthentication covers a rejected password or second-factor code.
	ErrAuthentication = errors.New("authentication failed")

	// ErrSecondFactorRequired is returned by AccountClient.Login when the
	// remote service wants a one-time code before issuing a session.
	ErrSecondFactorRequired = errors.New("second factor required")

	// ErrPresenceUnavailable means the local biometric/device-presence check
	// cannot run or was not passed. Non-fatal: callers fall back to a
	// password prompt.
	ErrPresenceUnavailable = errors.New("presence check unavailable")

	// ErrValidation covers bad local input, before any remote call is made.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means the addressed alias does not exist remotely.
	ErrNotFound = errors.New("no such alias")

	// ErrRemote covers transport faults, rate limits, and server errors.
	// Surfaced as-is, never retried.
	ErrRemote = errors.New("remote service error")
)
