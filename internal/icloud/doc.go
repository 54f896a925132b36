// Package icloud provides an HTTP implementation of the domain.AccountClient
// interface against Apple's iCloud web endpoints.
//
// Authentication goes through idmsa.apple.com (password sign-in, trusted
// device second factor, session trust) and setup.icloud.com (web session
// establishment and validation). Alias operations go through the
// premium-mail-settings webservice advertised by the account login response.
//
// All requests are JSON over HTTP. Session state (tokens, cookies, the
// per-account webservice base URL) is passed in and out explicitly via
// domain.Session; the client itself holds no mutable state. Non-2xx
// statuses map onto the domain error taxonomy: 401/403 to
// ErrAuthentication, 409 to ErrSecondFactorRequired, anything else to
// ErrRemote with the method, path, and status text for diagnostics.
package icloud
