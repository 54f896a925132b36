// Package alias maps command verbs onto remote alias operations.
//
// Each method validates its input locally, then passes straight through to
// the account client; there are no local caches and no retries. Search is
// client-side: the service has no server-side query, so matching is a
// case-insensitive substring test over label, address, and note of the
// full listing. Mutating verbs resolve their target (alias address or
// anonymous id) against the listing first, so an unknown target surfaces
// as "no such alias" before anything is changed remotely.
package alias
