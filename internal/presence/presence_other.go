//go:build !darwin || !cgo

package presence

import (
	"fmt"

	"hme/internal/domain"
)

// Unsupported is the presence checker on hosts without a biometric prompt.
type Unsupported struct{}

func New() domain.PresenceChecker { return Unsupported{} }

func (Unsupported) Available() bool { return false }

func (Unsupported) Confirm(string) error {
	return fmt.Errorf("%w on this platform", domain.ErrPresenceUnavailable)
}

var _ domain.PresenceChecker = Unsupported{}
