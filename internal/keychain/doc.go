// Package keychain stores the account secret in the macOS login keychain.
//
// Entries are generic passwords under the service "com.hidemyemail.cli",
// managed through /usr/bin/security. Shelling out keeps the tool free of
// cgo and lets the keychain's own access control (including any biometric
// ACL the user configures) apply at retrieval time.
//
// On non-darwin hosts Supported reports false and the caller should use
// the encrypted vault in internal/store instead.
package keychain
