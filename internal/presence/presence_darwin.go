//go:build darwin && cgo

package presence

import (
	"fmt"

	touchid "github.com/lox/go-touchid"

	"hme/internal/domain"
)

// TouchID confirms device presence via the system biometric prompt.
type TouchID struct{}

func New() domain.PresenceChecker { return TouchID{} }

func (TouchID) Available() bool { return true }

func (TouchID) Confirm(reason string) error {
	ok, err := touchid.Authenticate(reason)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPresenceUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: not confirmed", domain.ErrPresenceUnavailable)
	}
	return nil
}

var _ domain.PresenceChecker = TouchID{}
