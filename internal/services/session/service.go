package session

import (
	"context"
	"errors"
	"fmt"

	"hme/internal/domain"
)

// Service orchestrates credential release and remote authentication.
type Service struct {
	config   domain.ConfigStore
	creds    domain.CredentialStore
	sessions domain.SessionStore
	client   domain.AccountClient
	presence domain.PresenceChecker
	prompt   domain.Prompter
}

func New(
	config domain.ConfigStore,
	creds domain.CredentialStore,
	sessions domain.SessionStore,
	client domain.AccountClient,
	presence domain.PresenceChecker,
	prompt domain.Prompter,
) *Service {
	return &Service{
		config:   config,
		creds:    creds,
		sessions: sessions,
		client:   client,
		presence: presence,
		prompt:   prompt,
	}
}

// Authenticate returns a validated remote session for the configured
// account.
//
// Steps:
//  1. Resolve the configured account; absent means "run setup first".
//  2. Attempt a silent resume from stored session artifacts. Success skips
//     the secret entirely; failure falls through, it is never fatal.
//  3. Release the stored secret behind the presence gate, falling back to
//     an interactive password prompt when the gate is unavailable or not
//     passed.
//  4. Log in. A demanded second factor is prompted for and verified once;
//     rejection after that is fatal.
//  5. Persist the refreshed artifacts for the next invocation.
func (s *Service) Authenticate(ctx context.Context) (domain.Session, error) {
	account, ok, err := s.config.Account()
	if err != nil {
		return domain.Session{}, fmt.Errorf("read config: %w", err)
	}
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: run 'hme setup' first", domain.ErrNotConfigured)
	}

	stored, haveStored, err := s.sessions.LoadSession(account)
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session: %w", err)
	}
	if haveStored && stored.Resumable() {
		if resumed, err := s.client.Resume(ctx, stored); err == nil {
			_ = s.sessions.SaveSession(resumed)
			return resumed, nil
		}
		// Expired or revoked; do a full login below.
	}

	password, err := s.releaseSecret(account)
	if err != nil {
		return domain.Session{}, err
	}

	seed := domain.Session{Account: account}
	if haveStored {
		// Carry the trust token so a trusted login can skip the second factor.
		seed.TrustToken = stored.TrustToken
	}
	sess, err := s.login(ctx, domain.Credentials{Account: account, Password: password}, seed)
	if err != nil {
		return domain.Session{}, err
	}

	if err := s.sessions.SaveSession(sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Enroll stores the credentials, records the account as the default, and
// proves them with a full login. Any failure after the secret is written
// rolls the stored state back so a bad setup leaves no trace.
func (s *Service) Enroll(ctx context.Context, account, password string) (domain.Session, error) {
	if account == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%w: account and password are required", domain.ErrValidation)
	}

	if err := s.creds.SaveSecret(account, password); err != nil {
		return domain.Session{}, fmt.Errorf("store credentials: %w", err)
	}
	if err := s.config.SetAccount(account); err != nil {
		_ = s.creds.DeleteSecret(account)
		return domain.Session{}, fmt.Errorf("write config: %w", err)
	}

	sess, err := s.login(ctx, domain.Credentials{Account: account, Password: password}, domain.Session{Account: account})
	if err != nil {
		_ = s.creds.DeleteSecret(account)
		_ = s.config.ClearAccount()
		_ = s.sessions.DeleteSession(account)
		return domain.Session{}, err
	}

	if err := s.sessions.SaveSession(sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Logout removes the stored secret, session artifacts, and the default
// account. It reports the account that was configured and whether a secret
// was actually deleted.
func (s *Service) Logout() (account string, removed bool, err error) {
	account, ok, err := s.config.Account()
	if err != nil {
		return "", false, fmt.Errorf("read config: %w", err)
	}
	if !ok {
		return "", false, domain.ErrNotConfigured
	}

	switch err := s.creds.DeleteSecret(account); {
	case err == nil:
		removed = true
	case errors.Is(err, domain.ErrCredentialsNotFound):
		// Already gone; keep cleaning up.
	default:
		return account, false, fmt.Errorf("delete credentials: %w", err)
	}

	if err := s.sessions.DeleteSession(account); err != nil {
		return account, removed, fmt.Errorf("delete session: %w", err)
	}
	if err := s.config.ClearAccount(); err != nil {
		return account, removed, fmt.Errorf("write config: %w", err)
	}
	return account, removed, nil
}

// Status describes the local authentication state without triggering any
// prompt or secret release.
type Status struct {
	Account           string
	Configured        bool
	HasSecret         bool
	SessionValid      bool
	PresenceAvailable bool
}

// Report collects the status shown by the status command. Session validity
// is probed remotely when stored artifacts exist; every failure simply
// reads as "not valid".
func (s *Service) Report(ctx context.Context) (Status, error) {
	st := Status{PresenceAvailable: s.presence.Available()}

	account, ok, err := s.config.Account()
	if err != nil {
		return st, fmt.Errorf("read config: %w", err)
	}
	if !ok {
		return st, nil
	}
	st.Account = account
	st.Configured = true
	st.HasSecret = s.creds.HasSecret(account)

	if stored, haveStored, err := s.sessions.LoadSession(account); err == nil && haveStored && stored.Resumable() {
		if _, err := s.client.Resume(ctx, stored); err == nil {
			st.SessionValid = true
		}
	}
	return st, nil
}

// releaseSecret obtains the account password: from the store behind the
// presence gate, or interactively when the gate is unavailable or fails.
func (s *Service) releaseSecret(account string) (string, error) {
	if s.presence.Available() {
		if err := s.presence.Confirm("unlock the stored password for " + account); err == nil {
			secret, err := s.creds.LoadSecret(account)
			if err == nil {
				return secret, nil
			}
			if errors.Is(err, domain.ErrCredentialsNotFound) {
				return "", fmt.Errorf("%w: run 'hme setup' first", err)
			}
			return "", fmt.Errorf("read credentials: %w", err)
		}
		// Gate not passed: non-fatal, ask for the password instead.
	}
	return s.prompt.Password("Password for " + account)
}

// login performs the remote login, handling at most one second-factor
// exchange. A rejected code is fatal; no further retries.
func (s *Service) login(ctx context.Context, creds domain.Credentials, seed domain.Session) (domain.Session, error) {
	sess, err := s.client.Login(ctx, creds, seed)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, domain.ErrSecondFactorRequired) {
		return domain.Session{}, err
	}

	code, err := s.prompt.Line("Second factor code")
	if err != nil {
		return domain.Session{}, err
	}
	verified, err := s.client.VerifyCode(ctx, sess, code)
	if err != nil {
		return domain.Session{}, err
	}
	return verified, nil
}
