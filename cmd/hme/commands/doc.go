// Package commands defines the hme CLI and wires dependencies for subcommands.
//
// Commands
//
//   - setup        Store credentials and verify them with a full login
//   - logout       Remove stored credentials and session data
//   - status       Show account, credential, session, and biometric state
//   - list         List aliases, optionally active-only and truncated
//   - search       Case-insensitive substring search over label/address/note
//   - create       Reserve a new alias with a label and optional note
//   - update       Change an alias label and/or note
//   - deactivate   Stop forwarding for an alias
//   - reactivate   Resume forwarding for an alias
//   - delete       Permanently delete an alias (confirmation gated)
//
// # Implementation
//
// The root command builds a dependency graph (stores, remote client,
// session service) before any subcommand runs, so handlers share one app
// context. Authenticated verbs obtain a session through the session
// service, which resumes silently when possible and otherwise walks the
// presence-gated credential release and login flow. Prompts and notices go
// to stderr; data output goes to stdout.
package commands
