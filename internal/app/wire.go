package app

import (
	"hme/internal/domain"
	"hme/internal/icloud"
	"hme/internal/keychain"
	"hme/internal/presence"
	sessionsvc "hme/internal/services/session"
	"hme/internal/store"
)

// keychainService names the generic-password entries this tool owns.
const keychainService = "com.hidemyemail.cli"

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config      domain.ConfigStore
	Credentials domain.CredentialStore
	Sessions    domain.SessionStore
	Client      domain.AccountClient
	Presence    domain.PresenceChecker
	Auth        *sessionsvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	configStore := store.NewConfigStore(cfg.Home)
	sessionStore := store.NewSessionStore(cfg.Home)

	// Secret storage: the OS keychain where one exists, otherwise the
	// passphrase-encrypted vault file.
	var credentialStore domain.CredentialStore
	if keychain.Supported() {
		credentialStore = keychain.New(keychainService)
	} else {
		credentialStore = store.NewVault(cfg.Home, func() (string, error) {
			return cfg.Prompt.Password("Vault passphrase")
		})
	}

	client := icloud.New()
	if cfg.HTTP != nil {
		client.HTTP = cfg.HTTP
	}

	presenceChecker := presence.New()

	auth := sessionsvc.New(configStore, credentialStore, sessionStore, client, presenceChecker, cfg.Prompt)

	return &Wire{
		Config:      configStore,
		Credentials: credentialStore,
		Sessions:    sessionStore,
		Client:      client,
		Presence:    presenceChecker,
		Auth:        auth,
	}, nil
}
