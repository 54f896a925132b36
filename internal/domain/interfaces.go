package domain

import "context"

// CredentialStore persists the account secret in secure storage.
type CredentialStore interface {
	SaveSecret(account, secret string) error
	// LoadSecret returns ErrCredentialsNotFound when no entry exists.
	LoadSecret(account string) (string, error)
	DeleteSecret(account string) error
	// HasSecret reports entry existence without releasing the secret
	// (and so without triggering any presence gate).
	HasSecret(account string) bool
}

// SessionStore persists session artifacts between invocations.
type SessionStore interface {
	SaveSession(sess Session) error
	LoadSession(account string) (Session, bool, error)
	DeleteSession(account string) error
}

// ConfigStore records which account the tool operates on.
type ConfigStore interface {
	SetAccount(account string) error
	Account() (string, bool, error)
	ClearAccount() error
}

// PresenceChecker gates release of the stored secret behind a local
// biometric/device-presence check.
type PresenceChecker interface {
	Available() bool
	// Confirm blocks on the OS prompt. A failed or cancelled check returns
	// an error wrapping ErrPresenceUnavailable.
	Confirm(reason string) error
}

// Prompter asks the user for input on the controlling terminal.
type Prompter interface {
	// Line reads a visible line of input.
	Line(label string) (string, error)
	// Password reads a line with echo disabled.
	Password(label string) (string, error)
}

// AccountClient is how we talk to the remote account service. Session state
// is passed explicitly so implementations stay stateless and testable.
type AccountClient interface {
	// Login authenticates with the password. When the service demands a
	// one-time code it returns the partial session together with an error
	// wrapping ErrSecondFactorRequired; VerifyCode completes the handshake.
	Login(ctx context.Context, creds Credentials, sess Session) (Session, error)
	// VerifyCode submits the second-factor code and requests session trust
	// so future logins resume silently.
	VerifyCode(ctx context.Context, sess Session, code string) (Session, error)
	// Resume validates stored session artifacts without the password.
	Resume(ctx context.Context, sess Session) (Session, error)

	ListAliases(ctx context.Context, sess Session) ([]Alias, error)
	CreateAlias(ctx context.Context, sess Session, label, note string) (Alias, error)
	UpdateAlias(ctx context.Context, sess Session, anonymousID, label, note string) error
	SetAliasActive(ctx context.Context, sess Session, anonymousID string, active bool) error
	DeleteAlias(ctx context.Context, sess Session, anonymousID string) error
}
