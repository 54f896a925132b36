// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the remote account client, and the
// session service from Config, exposing them via the Wire struct for
// commands to use.
package app
