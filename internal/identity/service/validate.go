package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/accessly/authd/internal/identity/domain"
	"github.com/accessly/authd/pkg/cryptox"
)

// PasswordBounds are the configured password length limits. Max is capped
// at bcrypt's 72-byte input limit no matter what configuration asks for.
type PasswordBounds struct {
	Min int
	Max int
}

// DefaultPasswordBounds matches the deployment this service replaces.
var DefaultPasswordBounds = PasswordBounds{Min: 6, Max: cryptox.MaxPasswordBytes}

// ValidationError reports a malformed field in a flow input. Always
// client-fixable; the message is safe to echo.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// validateRegistration checks the shape of a registration input. The first
// failure short-circuits; no partial processing happens after it.
func validateRegistration(c domain.Credentials, bounds PasswordBounds) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	return validatePassword(c.Password, bounds)
}

// validateLogin checks the shape of a login input.
func validateLogin(c domain.Credentials, bounds PasswordBounds) error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	return validatePassword(c.Password, bounds)
}

func validateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

func validatePassword(password string, bounds PasswordBounds) error {
	if password == "" {
		return &ValidationError{Field: "password", Reason: "is required"}
	}
	if len(password) < bounds.Min {
		return &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters", bounds.Min),
		}
	}
	max := bounds.Max
	if max <= 0 || max > cryptox.MaxPasswordBytes {
		max = cryptox.MaxPasswordBytes
	}
	if len(password) > max {
		return &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at most %d characters", max),
		}
	}
	return nil
}
