package domain

import "time"

// Alias is a forwarding email address owned by the remote service. The tool
// never caches these; every command works on a fresh listing.
type Alias struct {
	AnonymousID string
	Address     string
	Label       string
	Note        string
	Active      bool
	ForwardTo   string
	Domain      string
	CreatedUTC  int64
}

// Created returns the creation time in the local zone.
func (a Alias) Created() time.Time { return time.Unix(a.CreatedUTC, 0) }

// Credentials pairs the account identifier with the secret held in secure
// storage. The secret must never reach process output or logs.
type Credentials struct {
	Account  string
	Password string
}

// Session holds the remote session artifacts carried between invocations:
// tokens issued during login plus the cookies the service expects back.
// It contains no password material and is persisted separately from it.
type Session struct {
	Account      string            `json:"account"`
	SessionToken string            `json:"session_token,omitempty"`
	SessionID    string            `json:"session_id,omitempty"`
	Scnt         string            `json:"scnt,omitempty"`
	TrustToken   string            `json:"trust_token,omitempty"`
	APIBase      string            `json:"api_base,omitempty"`
	Cookies      map[string]string `json:"cookies,omitempty"`
	SavedUTC     int64             `json:"saved_utc"`
}

// Resumable reports whether the session carries enough state to attempt a
// silent resume without touching the stored secret.
func (s Session) Resumable() bool { return s.SessionToken != "" && len(s.Cookies) > 0 }
