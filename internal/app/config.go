package app

import (
	"net/http"

	"hme/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string          // config directory, e.g. $HOME/.hidemyemail
	HTTP   *http.Client    // optional; defaults to http.DefaultClient
	Prompt domain.Prompter // terminal prompter; required
}
