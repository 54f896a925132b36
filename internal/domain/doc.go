// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (aliases, credentials, session state), the error
// taxonomy surfaced to the user, and contracts (interfaces) only.
package domain
