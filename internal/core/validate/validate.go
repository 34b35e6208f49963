// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
)

// MinPasswordLength mirrors the backend's registration rule.
const MinPasswordLength = 6

// Required validates a value is non-empty after trimming whitespace.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// Email validates a bare email address.
func Email(value string) error {
	if err := Required(value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != strings.TrimSpace(value) {
		return fmt.Errorf("not a valid email address")
	}
	return nil
}

// Password validates a new account password.
func Password(value string) error {
	if len(value) < MinPasswordLength {
		return fmt.Errorf("must be at least %d characters", MinPasswordLength)
	}
	return nil
}
