// Package gate keeps the celebration behind an optional password.
package gate

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDenied is returned when the password does not match.
	ErrDenied = errors.New("access denied")
	// ErrCanceled is returned when the user dismisses the prompt.
	ErrCanceled = errors.New("prompt canceled")
)

// Gate checks passwords against a bcrypt hash. The zero Gate is open.
type Gate struct {
	Hash []byte
}

// Open reports whether no password is required.
func (g Gate) Open() bool { return len(g.Hash) == 0 }

// Check returns nil when password matches or the gate is open.
func (g Gate) Check(password string) error {
	if g.Open() {
		return nil
	}
	err := bcrypt.CompareHashAndPassword(g.Hash, []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrDenied
	default:
		return fmt.Errorf("failed to check password: %w", err)
	}
}

// HashPassword returns a bcrypt hash suitable for the gate.hash setting.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Prompt asks for the password in a native dialog and checks it. It blocks
// until the dialog closes, so call it off the render goroutine.
func Prompt(g Gate) error {
	if g.Open() {
		return nil
	}
	_, password, err := zenity.Password(zenity.Title("Unlock the celebration"))
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return ErrCanceled
		}
		return fmt.Errorf("failed to show password dialog: %w", err)
	}
	return g.Check(password)
}
